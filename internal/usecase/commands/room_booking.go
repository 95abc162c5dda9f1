package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/notification"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomBookingInput struct {
	RoomID           string
	CheckIn          string
	CheckOut         string
	GuestCount       int
	GuestName        string
	GuestPhone       string
	SpecialRequests  string
	VerificationCode string
}

type RoomBookingCommands interface {
	CreateRoomBooking(ctx context.Context, actor booking.Actor, in CreateRoomBookingInput) (*lodging.RoomBooking, error)
	UpdateRoomBookingStatus(ctx context.Context, actor booking.Actor, id uuid.UUID, status string) error
	DeleteRoomBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) error
}

type roomBookingCommandsImpl struct {
	deps    BookingDeps
	pricing pricing.PriceCalculator
	clock   clock.Clock
}

func NewRoomBookingCommands(deps BookingDeps, calc pricing.PriceCalculator, clk clock.Clock) RoomBookingCommands {
	return &roomBookingCommandsImpl{deps: deps, pricing: calc, clock: clk}
}

type roomBookingRequest struct {
	roomID   uuid.UUID
	stay     booking.StayWindow
	guests   booking.GuestCount
	contact  booking.Contact
	requests booking.SpecialRequests
	verify   bool
}

func (uc *roomBookingCommandsImpl) validate(actor booking.Actor, in CreateRoomBookingInput) (roomBookingRequest, error) {
	v := &booking.Validator{}
	req := roomBookingRequest{roomID: requiredUUID(v, "room_id", in.RoomID)}

	checkIn, inErr := booking.ParseDate(in.CheckIn)
	checkOut, outErr := booking.ParseDate(in.CheckOut)
	okIn := v.Check("check_in", inErr)
	okOut := v.Check("check_out", outErr)
	if okIn && okOut {
		stay, err := booking.NewStayWindow(checkIn, checkOut)
		if v.Check("check_out", err) {
			req.stay = stay
		}
	}

	guests, err := booking.NewGuestCount(in.GuestCount)
	if v.Check("guest_count", err) {
		req.guests = guests
	}
	req.contact = booking.ValidateContact(v, actor, in.GuestName, in.GuestPhone)
	requests, err := booking.NewSpecialRequests(in.SpecialRequests)
	if v.Check("special_requests", err) {
		req.requests = requests
	}
	req.verify = checkVerification(v, uc.deps, actor, in.VerificationCode)

	return req, v.Err()
}

func (uc *roomBookingCommandsImpl) CreateRoomBooking(ctx context.Context, actor booking.Actor, in CreateRoomBookingInput) (_ *lodging.RoomBooking, err error) {
	ctx, span := startSpan(ctx, "RoomBooking.Create", notification.KindRoom)
	defer func() { err = finish(span, uc.deps.Observer, notification.KindRoom, err) }()

	req, err := uc.validate(actor, in)
	if err != nil {
		return nil, err
	}
	if req.verify {
		if err := uc.deps.Verifier.Check(ctx, req.contact.Phone.String(), in.VerificationCode); err != nil {
			return nil, err
		}
	}

	var created *lodging.RoomBooking
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Locks().LockRoom(ctx, tx.DB(), req.roomID)
		if err != nil {
			return notFoundAs(err, lodging.ErrRoomNotFound)
		}
		if err := room.CheckOccupancy(req.guests.Int()); err != nil {
			return booking.NewLimitError("guest_count", err.Error(), "max_occupancy", room.Type.MaxOccupancy)
		}

		overlapping, err := tx.Ledger().ConsumedRoom(ctx, tx.DB(), room.ID, req.stay)
		if err != nil {
			return err
		}
		if err := capacity.EvaluateRoom(room.AcceptsBookings(), overlapping).Err(); err != nil {
			return err
		}

		total, err := uc.pricing.LodgingTotal(room.Type.BasePrice, req.stay)
		if err != nil {
			return booking.NewFieldError("total_price", err.Error())
		}

		b := lodging.NewRoomBooking(room.ID, actor.UserIDPtr(), req.contact, req.stay, req.guests, total, req.requests, uc.clock.Now())
		if err := tx.RoomBookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if req.verify {
		redeemCode(ctx, uc.deps.Verifier, req.contact.Phone.String(), in.VerificationCode, created.ID())
	}

	now := uc.clock.Now()
	emitAll(uc.deps.Emitter,
		notification.ReservationEvent(notification.BookingCreated, notification.KindRoom, created.ID(), created.Status(), created.Stay().CheckIn(), now),
		notification.AvailabilityEvent(notification.KindRoom, created.Stay().CheckIn(), now),
	)
	return created, nil
}

func (uc *roomBookingCommandsImpl) UpdateRoomBookingStatus(ctx context.Context, actor booking.Actor, id uuid.UUID, status string) (err error) {
	ctx, span := startSpan(ctx, "RoomBooking.UpdateStatus", notification.KindRoom)
	defer func() { err = finish(span, nil, notification.KindRoom, err) }()

	next, err := booking.ParseStatus(status)
	if err != nil {
		return booking.NewFieldError("status", err.Error())
	}

	var snap *shared.BookingSnapshot
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Locks().LockRoomBooking(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, lodging.ErrBookingNotFound)
		}
		if err := actor.AuthorizeStatusChange(s.UserID, next); err != nil {
			return err
		}
		if _, err := s.Status.TransitionTo(next); err != nil {
			return err
		}
		if err := tx.RoomBookings().UpdateStatus(ctx, tx.DB(), id, next); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return err
	}

	uc.emitStatusChange(snap, next)
	return nil
}

func (uc *roomBookingCommandsImpl) emitStatusChange(snap *shared.BookingSnapshot, next booking.Status) {
	now := uc.clock.Now()
	if next == booking.StatusCancelled {
		emitAll(uc.deps.Emitter,
			notification.ReservationEvent(notification.BookingCancelled, notification.KindRoom, snap.ID, next, snap.Date, now),
			notification.AvailabilityEvent(notification.KindRoom, snap.Date, now),
		)
		return
	}
	emitAll(uc.deps.Emitter, notification.ReservationEvent(notification.BookingUpdated, notification.KindRoom, snap.ID, next, snap.Date, now))
}

func (uc *roomBookingCommandsImpl) DeleteRoomBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "RoomBooking.Delete", notification.KindRoom)
	defer func() { err = finish(span, nil, notification.KindRoom, err) }()

	if !actor.IsAdmin() {
		return booking.ErrNotOwner
	}

	var snap *shared.BookingSnapshot
	err = uc.deps.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Locks().LockRoomBooking(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, lodging.ErrBookingNotFound)
		}
		if err := tx.RoomBookings().Delete(ctx, tx.DB(), id); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return err
	}

	uc.deps.Emitter.Emit(notification.AvailabilityEvent(notification.KindRoom, snap.Date, uc.clock.Now()))
	return nil
}
