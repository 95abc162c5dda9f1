package request

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateRestaurantBookingRequest struct {
	Date             string  `json:"booking_date"`
	MealType         string  `json:"meal_type"`
	TimeSlotID       string  `json:"time_slot_id"`
	DiningRoomID     string  `json:"dining_room_id"`
	PackageID        string  `json:"package_id"`
	GuestCount       int     `json:"guest_count"`
	TotalPrice       Decimal `json:"total_price" copier:"-"`
	GuestName        string  `json:"guest_name"`
	GuestPhone       string  `json:"guest_phone"`
	SpecialRequests  string  `json:"special_requests"`
	VerificationCode string  `json:"verification_code"`
}

func (r *CreateRestaurantBookingRequest) ToInput() (commands.CreateRestaurantBookingInput, error) {
	var in commands.CreateRestaurantBookingInput
	if err := copier.Copy(&in, r); err != nil {
		return in, err
	}
	in.TotalPrice = string(r.TotalPrice)
	return in, nil
}

type UpdateRestaurantBookingRequest struct {
	Status          *string `json:"status"`
	SpecialRequests *string `json:"special_requests"`
}

func (r *UpdateRestaurantBookingRequest) ToInput() commands.UpdateRestaurantBookingInput {
	return commands.UpdateRestaurantBookingInput{Status: r.Status, SpecialRequests: r.SpecialRequests}
}

type MealTypeQuery struct {
	MealType string `form:"meal_type"`
}

type PackageQuery struct {
	MealType  string `form:"meal_type"`
	CuisineID string `form:"cuisine_id"`
}

type DiningAvailabilityQuery struct {
	Date       string `form:"date"`
	MealType   string `form:"meal_type"`
	TimeSlotID string `form:"time_slot_id"`
}

func (q *DiningAvailabilityQuery) ToInput() queries.DiningAvailabilityInput {
	return queries.DiningAvailabilityInput{Date: q.Date, MealType: q.MealType, TimeSlotID: q.TimeSlotID}
}

type SlotAvailabilityQuery struct {
	Date     string `form:"date"`
	MealType string `form:"meal_type"`
}

type RestaurantBookingListQuery struct {
	ListQuery
	Phone    string `form:"phone"`
	UserID   string `form:"user_id"`
	Status   string `form:"status"`
	Date     string `form:"date"`
	MealType string `form:"meal_type"`
}

func (q *RestaurantBookingListQuery) ToInput() queries.RestaurantBookingListInput {
	return queries.RestaurantBookingListInput{
		ListParams: q.ToParams(),
		Phone:      q.Phone,
		UserID:     q.UserID,
		Status:     q.Status,
		Date:       q.Date,
		MealType:   q.MealType,
	}
}
