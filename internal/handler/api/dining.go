package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiningRoomHandler struct {
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
}

func NewDiningRoomHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries, bookings queries.BookingQueries) *DiningRoomHandler {
	return &DiningRoomHandler{catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary List dining rooms
// @Tags dining-rooms
// @Produce json
// @Success 200 {array} queries.DiningRoomView
// @Router /dining-rooms [get]
func (h *DiningRoomHandler) List(c *gin.Context) {
	rooms, err := h.catalog.ListDiningRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Get dining room
// @Tags dining-rooms
// @Produce json
// @Param id path string true "Dining room ID"
// @Success 200 {object} queries.DiningRoomView
// @Failure 404 {object} httperr.Response
// @Router /dining-rooms/{id} [get]
func (h *DiningRoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := h.catalog.GetDiningRoom(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary Dining room availability
// @Description Open dining rooms with remaining seats for a date and meal, optionally narrowed to one time slot
// @Tags dining-rooms
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param meal_type query string true "breakfast, lunch or dinner"
// @Param time_slot_id query string false "Time slot ID"
// @Success 200 {array} queries.DiningRoomAvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /dining-rooms/availability [get]
func (h *DiningRoomHandler) Availability(c *gin.Context) {
	var q reqdto.DiningAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rooms, err := h.availability.DiningRooms(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Dining room statistics
// @Description Booking count, guest sum and average over confirmed and completed bookings
// @Tags dining-rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dining room ID"
// @Success 200 {object} queries.DiningRoomStatsView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /dining-rooms/{id}/statistics [get]
func (h *DiningRoomHandler) Statistics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.bookings.DiningRoomStatistics(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
