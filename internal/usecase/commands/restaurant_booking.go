package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/notification"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/patch"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRestaurantBookingInput struct {
	Date             string
	MealType         string
	TimeSlotID       string
	DiningRoomID     string
	PackageID        string
	GuestCount       int
	TotalPrice       string
	GuestName        string
	GuestPhone       string
	SpecialRequests  string
	VerificationCode string
}

// UpdateRestaurantBookingInput is a partial update; nil fields stay unchanged.
type UpdateRestaurantBookingInput struct {
	Status          *string
	SpecialRequests *string
}

type RestaurantBookingCommands interface {
	CreateRestaurantBooking(ctx context.Context, actor booking.Actor, in CreateRestaurantBookingInput) (*dining.RestaurantBooking, error)
	UpdateRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID, in UpdateRestaurantBookingInput) error
	DeleteRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) error
}

type restaurantBookingCommandsImpl struct {
	deps    BookingDeps
	pricing pricing.PriceCalculator
	clock   clock.Clock
}

func NewRestaurantBookingCommands(deps BookingDeps, calc pricing.PriceCalculator, clk clock.Clock) RestaurantBookingCommands {
	return &restaurantBookingCommandsImpl{deps: deps, pricing: calc, clock: clk}
}

type restaurantBookingRequest struct {
	params dining.NewRestaurantBookingParams
	verify bool
}

func (uc *restaurantBookingCommandsImpl) validate(actor booking.Actor, in CreateRestaurantBookingInput) (restaurantBookingRequest, error) {
	v := &booking.Validator{}
	var req restaurantBookingRequest
	p := &req.params

	if date, err := booking.ParseDate(in.Date); v.Check("booking_date", err) {
		p.Date = date
	}
	if meal, err := booking.ParseMealType(in.MealType); v.Check("meal_type", err) {
		p.MealType = meal
	}
	p.TimeSlotID = requiredUUID(v, "time_slot_id", in.TimeSlotID)
	p.DiningRoomID = optionalUUID(v, "dining_room_id", in.DiningRoomID)
	p.PackageID = optionalUUID(v, "package_id", in.PackageID)
	if guests, err := booking.NewGuestCount(in.GuestCount); v.Check("guest_count", err) {
		p.GuestCount = guests
	}

	if in.TotalPrice == "" {
		v.Add("total_price", "is required")
	} else if supplied, err := pricing.ParseMoney(in.TotalPrice); v.Check("total_price", err) {
		if total, err := uc.pricing.DiningTotal(supplied); v.Check("total_price", err) {
			p.TotalPrice = total
		}
	}

	p.Contact = booking.ValidateContact(v, actor, in.GuestName, in.GuestPhone)
	if requests, err := booking.NewSpecialRequests(in.SpecialRequests); v.Check("special_requests", err) {
		p.SpecialRequests = requests
	}
	p.UserID = actor.UserIDPtr()
	req.verify = checkVerification(v, uc.deps, actor, in.VerificationCode)

	return req, v.Err()
}

func (uc *restaurantBookingCommandsImpl) CreateRestaurantBooking(ctx context.Context, actor booking.Actor, in CreateRestaurantBookingInput) (_ *dining.RestaurantBooking, err error) {
	ctx, span := startSpan(ctx, "RestaurantBooking.Create", notification.KindRestaurant)
	defer func() { err = finish(span, uc.deps.Observer, notification.KindRestaurant, err) }()

	req, err := uc.validate(actor, in)
	if err != nil {
		return nil, err
	}
	if req.verify {
		if err := uc.deps.Verifier.Check(ctx, req.params.Contact.Phone.String(), in.VerificationCode); err != nil {
			return nil, err
		}
	}
	p := req.params

	var created *dining.RestaurantBooking
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if p.PackageID != nil {
			if err := checkPackage(ctx, tx, *p.PackageID, p.MealType, p.GuestCount.Int()); err != nil {
				return err
			}
		}

		// lock order: time slot, then dining room
		slot, err := tx.Locks().LockTimeSlot(ctx, tx.DB(), p.TimeSlotID)
		if err != nil {
			return notFoundAs(err, dining.ErrTimeSlotNotFound)
		}
		if slot.MealType != p.MealType {
			return booking.NewFieldError("time_slot_id", dining.ErrMealTypeMismatch.Error())
		}

		var room *dining.DiningRoom
		if p.DiningRoomID != nil {
			if room, err = tx.Locks().LockDiningRoom(ctx, tx.DB(), *p.DiningRoomID); err != nil {
				return notFoundAs(err, dining.ErrDiningRoomNotFound)
			}
		}

		decision, err := uc.evaluate(ctx, tx, slot, room, p)
		if err != nil {
			return err
		}
		if err := decision.Err(); err != nil {
			return err
		}

		b := dining.NewRestaurantBooking(p, uc.clock.Now())
		if err := tx.RestaurantBookings().Create(ctx, tx.DB(), b); err != nil {
			return notFoundAs(err, dining.ErrTimeSlotNotFound)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if req.verify {
		redeemCode(ctx, uc.deps.Verifier, p.Contact.Phone.String(), in.VerificationCode, created.ID())
	}

	now := uc.clock.Now()
	emitAll(uc.deps.Emitter,
		notification.ReservationEvent(notification.BookingCreated, notification.KindRestaurant, created.ID(), created.Status(), created.Date(), now),
		notification.AvailabilityEvent(notification.KindRestaurant, created.Date(), now),
	)
	return created, nil
}

// evaluate reads the ledger for the locked slot and optional dining room.
func (uc *restaurantBookingCommandsImpl) evaluate(ctx context.Context, tx shared.Tx, slot *dining.TimeSlot, room *dining.DiningRoom, p dining.NewRestaurantBookingParams) (capacity.Decision, error) {
	guests := p.GuestCount.Int()

	slotUsed, err := tx.Ledger().ConsumedTimeSlot(ctx, tx.DB(), slot.ID, p.Date)
	if err != nil {
		return capacity.Decision{}, err
	}
	slotDecision := capacity.EvaluateTimeSlot(slot.IsActive, capacity.Usage{Capacity: slot.MaxCapacity, Consumed: slotUsed}, guests)

	if room == nil {
		return capacity.EvaluateRestaurant(slotDecision, nil), nil
	}
	roomUsed, err := tx.Ledger().ConsumedDiningRoom(ctx, tx.DB(), room.ID, slot.Window(p.Date))
	if err != nil {
		return capacity.Decision{}, err
	}
	roomDecision := capacity.EvaluateDiningRoom(room.IsAvailable, capacity.Usage{Capacity: room.Capacity, Consumed: roomUsed}, guests)
	return capacity.EvaluateRestaurant(slotDecision, &roomDecision), nil
}

func checkPackage(ctx context.Context, tx shared.Tx, id uuid.UUID, meal booking.MealType, guests int) error {
	pkg, err := tx.Reads().MealPackageByID(ctx, id)
	if err != nil {
		return notFoundAs(err, dining.ErrPackageNotFound)
	}
	if !pkg.IsActive {
		return errs.Mark(dining.ErrPackageNotFound, errs.ErrNotFound)
	}
	if err := pkg.Fits(meal, guests); err != nil {
		if errs.Is(err, dining.ErrPackageTooSmall) {
			return booking.NewLimitError("guest_count", err.Error(), "max_guests", pkg.MaxGuests)
		}
		return booking.NewFieldError("package_id", err.Error())
	}
	return nil
}

func (uc *restaurantBookingCommandsImpl) UpdateRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID, in UpdateRestaurantBookingInput) (err error) {
	ctx, span := startSpan(ctx, "RestaurantBooking.Update", notification.KindRestaurant)
	defer func() { err = finish(span, nil, notification.KindRestaurant, err) }()

	v := &booking.Validator{}
	var changes shared.RestaurantBookingPatch
	if in.Status != nil {
		if next, err := booking.ParseStatus(*in.Status); v.Check("status", err) {
			changes.Status = &next
		}
	}
	if in.SpecialRequests != nil {
		if requests, err := booking.NewSpecialRequests(*in.SpecialRequests); v.Check("special_requests", err) {
			s := requests.String()
			changes.SpecialRequests = &s
		}
	}
	if in.Status == nil && in.SpecialRequests == nil {
		v.Add("status", "status or special_requests is required")
	}
	if err := v.Err(); err != nil {
		return err
	}

	var snap *shared.BookingSnapshot
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Locks().LockRestaurantBooking(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, dining.ErrBookingNotFound)
		}
		if changes.Status != nil {
			if err := actor.AuthorizeStatusChange(s.UserID, *changes.Status); err != nil {
				return err
			}
			if _, err := s.Status.TransitionTo(*changes.Status); err != nil {
				return err
			}
		} else if err := authorizeEdit(actor, s.UserID); err != nil {
			return err
		}
		if err := tx.RestaurantBookings().Update(ctx, tx.DB(), id, changes); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return err
	}

	now := uc.clock.Now()
	if changes.Status != nil && *changes.Status == booking.StatusCancelled {
		emitAll(uc.deps.Emitter,
			notification.ReservationEvent(notification.BookingCancelled, notification.KindRestaurant, id, booking.StatusCancelled, snap.Date, now),
			notification.AvailabilityEvent(notification.KindRestaurant, snap.Date, now),
		)
		return nil
	}
	status := patch.Coalesce(changes.Status, snap.Status)
	uc.deps.Emitter.Emit(notification.ReservationEvent(notification.BookingUpdated, notification.KindRestaurant, id, status, snap.Date, now))
	return nil
}

// authorizeEdit covers non-status edits: the owner or an admin.
func authorizeEdit(actor booking.Actor, ownerID *uuid.UUID) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsGuest():
		return booking.ErrGuestCannotEdit
	case ownerID == nil || *ownerID != actor.UserID:
		return booking.ErrNotOwner
	default:
		return nil
	}
}

func (uc *restaurantBookingCommandsImpl) DeleteRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "RestaurantBooking.Delete", notification.KindRestaurant)
	defer func() { err = finish(span, nil, notification.KindRestaurant, err) }()

	if !actor.IsAdmin() {
		return booking.ErrNotOwner
	}

	var snap *shared.BookingSnapshot
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Locks().LockRestaurantBooking(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, dining.ErrBookingNotFound)
		}
		if err := tx.RestaurantBookings().Delete(ctx, tx.DB(), id); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return err
	}

	uc.deps.Emitter.Emit(notification.AvailabilityEvent(notification.KindRestaurant, snap.Date, uc.clock.Now()))
	return nil
}
