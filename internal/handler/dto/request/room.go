package request

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Field checks are left to the usecase so every failing field is reported together.
type CreateRoomBookingRequest struct {
	RoomID           string `json:"room_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	GuestCount       int    `json:"guest_count"`
	GuestName        string `json:"guest_name"`
	GuestPhone       string `json:"guest_phone"`
	SpecialRequests  string `json:"special_requests"`
	VerificationCode string `json:"verification_code"`
}

func (r *CreateRoomBookingRequest) ToInput() (commands.CreateRoomBookingInput, error) {
	var in commands.CreateRoomBookingInput
	err := copier.Copy(&in, r)
	return in, err
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomListQuery struct {
	RoomTypeID string `form:"room_type_id"`
	Status     string `form:"status"`
}

type RoomSearchQuery struct {
	RoomTypeID string `form:"room_type_id"`
	CheckIn    string `form:"check_in"`
	CheckOut   string `form:"check_out"`
}

func (q *RoomSearchQuery) ToInput() queries.RoomSearchInput {
	return queries.RoomSearchInput{RoomTypeID: q.RoomTypeID, CheckIn: q.CheckIn, CheckOut: q.CheckOut}
}

type StayQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

type ListQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (q *ListQuery) ToParams() queries.ListParams {
	return queries.ListParams{Cursor: q.Cursor, Limit: q.Limit}
}

type RoomBookingListQuery struct {
	ListQuery
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (q *RoomBookingListQuery) ToInput() queries.RoomBookingListInput {
	return queries.RoomBookingListInput{
		ListParams: q.ToParams(),
		Status:     q.Status,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
	}
}
