package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds         commands.RoomBookingCommands
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
}

func NewRoomHandler(cmds commands.RoomBookingCommands, catalog queries.CatalogQueries, availability queries.AvailabilityQueries, bookings queries.BookingQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomTypeView
// @Router /rooms/types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.catalog.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Get room type
// @Tags rooms
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} queries.RoomTypeView
// @Failure 404 {object} httperr.Response
// @Router /rooms/types/{id} [get]
func (h *RoomHandler) GetRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rt, err := h.catalog.GetRoomType(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param room_type_id query string false "Room type ID"
// @Param status query string false "available, occupied or maintenance"
// @Success 200 {array} queries.RoomView
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rooms, err := h.catalog.ListRooms(c.Request.Context(), q.RoomTypeID, q.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Search available rooms
// @Description Rooms with no active booking overlapping [check_in, check_out), cheapest first
// @Tags rooms
// @Produce json
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Param room_type_id query string false "Room type ID"
// @Success 200 {array} queries.RoomView
// @Failure 400 {object} httperr.Response
// @Router /rooms/availability [get]
func (h *RoomHandler) SearchAvailability(c *gin.Context) {
	var q reqdto.RoomSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rooms, err := h.availability.SearchRooms(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Check a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Success 200 {object} queries.RoomAvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	view, err := h.availability.CheckRoom(c.Request.Context(), id, q.CheckIn, q.CheckOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create room booking
// @Description Reserve a room. Unauthenticated callers book as guests and must supply name and phone.
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomBookingRequest true "Booking"
// @Success 201 {object} resdto.RoomBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /rooms/bookings [post]
func (h *RoomHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	created, err := h.cmds.CreateRoomBooking(c.Request.Context(), middleware.Actor(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/rooms/bookings/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromRoomBooking(created))
}

// @Summary My room bookings
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.RoomBookingResponse]
// @Failure 401 {object} httperr.Response
// @Router /rooms/bookings/my [get]
func (h *RoomHandler) MyBookings(c *gin.Context) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := h.bookings.MyRoomBookings(c.Request.Context(), middleware.Actor(c), q.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondPage(c, page, resdto.FromRoomBookingView)
}

// @Summary List room bookings
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status"
// @Param start_date query string false "check_in on or after"
// @Param end_date query string false "check_out on or before"
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.RoomBookingResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms/bookings [get]
func (h *RoomHandler) ListBookings(c *gin.Context) {
	var q reqdto.RoomBookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := h.bookings.ListRoomBookings(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondPage(c, page, resdto.FromRoomBookingView)
}

// @Summary Get room booking
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/bookings/{id} [get]
func (h *RoomHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.bookings.GetRoomBooking(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomBookingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update room booking status
// @Description Customers may cancel their own bookings; admins may apply any allowed transition.
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/bookings/{id}/status [put]
func (h *RoomHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.UpdateRoomBookingStatus(c.Request.Context(), middleware.Actor(c), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete room booking
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/bookings/{id} [delete]
func (h *RoomHandler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteRoomBooking(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondPage[V, R any](c *gin.Context, page *queries.Page[V], conv func(V) (R, error)) {
	res, err := resdto.FromPage(page, conv)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
