package response

import (
	"time"

	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBookingResponse struct {
	ID              uuid.UUID     `json:"id"`
	RoomID          uuid.UUID     `json:"room_id"`
	RoomNumber      string        `json:"room_number,omitempty"`
	RoomTypeName    string        `json:"room_type_name,omitempty"`
	UserID          *uuid.UUID    `json:"user_id,omitempty"`
	GuestName       *string       `json:"guest_name,omitempty"`
	GuestPhone      *string       `json:"guest_phone,omitempty"`
	CheckIn         Date          `json:"check_in"`
	CheckOut        Date          `json:"check_out"`
	GuestCount      int           `json:"guest_count"`
	Status          string        `json:"status"`
	TotalPrice      pricing.Money `json:"total_price"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func FromRoomBooking(b *lodging.RoomBooking) *RoomBookingResponse {
	return &RoomBookingResponse{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		UserID:          b.UserID(),
		GuestName:       b.Contact().NamePtr(),
		GuestPhone:      b.Contact().PhonePtr(),
		CheckIn:         NewDate(b.Stay().CheckIn()),
		CheckOut:        NewDate(b.Stay().CheckOut()),
		GuestCount:      b.GuestCount().Int(),
		Status:          b.Status().String(),
		TotalPrice:      b.TotalPrice(),
		SpecialRequests: b.SpecialRequests().Ptr(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func FromRoomBookingView(v *queries.RoomBookingView) (*RoomBookingResponse, error) {
	var res RoomBookingResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type RestaurantBookingResponse struct {
	ID              uuid.UUID     `json:"id"`
	UserID          *uuid.UUID    `json:"user_id,omitempty"`
	GuestName       *string       `json:"guest_name,omitempty"`
	GuestPhone      *string       `json:"guest_phone,omitempty"`
	BookingDate     Date          `json:"booking_date"`
	MealType        string        `json:"meal_type"`
	TimeSlotID      uuid.UUID     `json:"time_slot_id"`
	TimeSlot        string        `json:"time_slot,omitempty"`
	DiningRoomID    *uuid.UUID    `json:"dining_room_id,omitempty"`
	DiningRoomName  *string       `json:"dining_room_name,omitempty"`
	PackageID       *uuid.UUID    `json:"package_id,omitempty"`
	PackageName     *string       `json:"package_name,omitempty"`
	GuestCount      int           `json:"guest_count"`
	Status          string        `json:"status"`
	TotalPrice      pricing.Money `json:"total_price"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func FromRestaurantBooking(b *dining.RestaurantBooking) *RestaurantBookingResponse {
	return &RestaurantBookingResponse{
		ID:              b.ID(),
		UserID:          b.UserID(),
		GuestName:       b.Contact().NamePtr(),
		GuestPhone:      b.Contact().PhonePtr(),
		BookingDate:     NewDate(b.Date()),
		MealType:        b.MealType().String(),
		TimeSlotID:      b.TimeSlotID(),
		DiningRoomID:    b.DiningRoomID(),
		PackageID:       b.PackageID(),
		GuestCount:      b.GuestCount().Int(),
		Status:          b.Status().String(),
		TotalPrice:      b.TotalPrice(),
		SpecialRequests: b.SpecialRequests().Ptr(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func FromRestaurantBookingView(v *queries.RestaurantBookingView) (*RestaurantBookingResponse, error) {
	var res RestaurantBookingResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// FromPage maps every item of a query page with conv.
func FromPage[V, R any](p *queries.Page[V], conv func(V) (R, error)) (*PageResponse[R], error) {
	items := make([]R, 0, len(p.Items))
	for _, v := range p.Items {
		r, err := conv(v)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return &PageResponse[R]{Items: items, NextCursor: p.NextCursor}, nil
}
