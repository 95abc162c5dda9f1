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
)

type RestaurantHandler struct {
	cmds         commands.RestaurantBookingCommands
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
}

func NewRestaurantHandler(cmds commands.RestaurantBookingCommands, catalog queries.CatalogQueries, availability queries.AvailabilityQueries, bookings queries.BookingQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary List time slots
// @Tags restaurant
// @Produce json
// @Param meal_type query string false "breakfast, lunch or dinner"
// @Success 200 {array} queries.TimeSlotView
// @Failure 400 {object} httperr.Response
// @Router /restaurant/time-slots [get]
func (h *RestaurantHandler) ListTimeSlots(c *gin.Context) {
	var q reqdto.MealTypeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	slots, err := h.catalog.ListTimeSlots(c.Request.Context(), q.MealType)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary List cuisines
// @Tags restaurant
// @Produce json
// @Success 200 {array} queries.CuisineView
// @Router /restaurant/cuisines [get]
func (h *RestaurantHandler) ListCuisines(c *gin.Context) {
	cuisines, err := h.catalog.ListCuisines(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, cuisines)
}

// @Summary Get cuisine
// @Tags restaurant
// @Produce json
// @Param id path string true "Cuisine ID"
// @Success 200 {object} queries.CuisineView
// @Failure 404 {object} httperr.Response
// @Router /restaurant/cuisines/{id} [get]
func (h *RestaurantHandler) GetCuisine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cuisine, err := h.catalog.GetCuisine(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, cuisine)
}

// @Summary List meal packages
// @Tags restaurant
// @Produce json
// @Param meal_type query string false "breakfast, lunch or dinner"
// @Param cuisine_id query string false "Cuisine ID"
// @Success 200 {array} queries.MealPackageView
// @Failure 400 {object} httperr.Response
// @Router /restaurant/packages [get]
func (h *RestaurantHandler) ListPackages(c *gin.Context) {
	var q reqdto.PackageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	packages, err := h.catalog.ListMealPackages(c.Request.Context(), q.MealType, q.CuisineID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// @Summary Get meal package
// @Tags restaurant
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} queries.MealPackageView
// @Failure 404 {object} httperr.Response
// @Router /restaurant/packages/{id} [get]
func (h *RestaurantHandler) GetPackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pkg, err := h.catalog.GetMealPackage(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// @Summary Time slot availability
// @Tags restaurant
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param meal_type query string true "breakfast, lunch or dinner"
// @Success 200 {array} queries.SlotAvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /restaurant/availability [get]
func (h *RestaurantHandler) Availability(c *gin.Context) {
	var q reqdto.SlotAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	slots, err := h.availability.RestaurantSlots(c.Request.Context(), q.Date, q.MealType)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary Create restaurant booking
// @Description Reserve seats in a time slot, optionally in a specific dining room
// @Tags restaurant
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRestaurantBookingRequest true "Booking"
// @Success 201 {object} resdto.RestaurantBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /restaurant/bookings [post]
func (h *RestaurantHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateRestaurantBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	created, err := h.cmds.CreateRestaurantBooking(c.Request.Context(), middleware.Actor(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/restaurant/bookings/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromRestaurantBooking(created))
}

// @Summary List restaurant bookings
// @Description Customers see their own bookings; admins may filter by phone, user, status, date and meal
// @Tags restaurant
// @Produce json
// @Security BearerAuth
// @Param phone query string false "Guest phone"
// @Param user_id query string false "User ID"
// @Param status query string false "Status"
// @Param date query string false "YYYY-MM-DD"
// @Param meal_type query string false "breakfast, lunch or dinner"
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.RestaurantBookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /restaurant/bookings [get]
func (h *RestaurantHandler) ListBookings(c *gin.Context) {
	var q reqdto.RestaurantBookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := h.bookings.ListRestaurantBookings(c.Request.Context(), middleware.Actor(c), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondPage(c, page, resdto.FromRestaurantBookingView)
}

// @Summary Get restaurant booking
// @Tags restaurant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RestaurantBookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurant/bookings/{id} [get]
func (h *RestaurantHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.bookings.GetRestaurantBooking(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRestaurantBookingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update restaurant booking
// @Description Change status and/or special requests
// @Tags restaurant
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateRestaurantBookingRequest true "Patch"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /restaurant/bookings/{id} [put]
func (h *RestaurantHandler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRestaurantBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.UpdateRestaurantBooking(c.Request.Context(), middleware.Actor(c), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete restaurant booking
// @Tags restaurant
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurant/bookings/{id} [delete]
func (h *RestaurantHandler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteRestaurantBooking(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
