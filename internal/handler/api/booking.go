package api

import (
	"net/http"

	"rental-admin/internal/domain/booking"
	reqdto "rental-admin/internal/handler/dto/request"
	resdto "rental-admin/internal/handler/dto/response"
	"rental-admin/internal/handler/httperr"
	"rental-admin/internal/usecase/commands"
	"rental-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings      commands.BookingCommands
	payments      commands.PaymentCommands
	cancellations commands.CancellationCommands
	q             queries.BookingQueries
}

func NewBookingHandler(
	bookings commands.BookingCommands,
	payments commands.PaymentCommands,
	cancellations commands.CancellationCommands,
	q queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookings:      bookings,
		payments:      payments,
		cancellations: cancellations,
		q:             q,
	}
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param property_id query string false "Property ID"
// @Param customer_id query string false "Customer ID"
// @Param status query string false "CONFIRMED or CANCELLED"
// @Param checkin_from query string false "Inclusive lower check-in bound (YYYY-MM-DD)"
// @Param checkin_to query string false "Exclusive upper check-in bound (YYYY-MM-DD)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.BookingListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	cursor, limit, ok := page(c)
	if !ok {
		return
	}
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewBookingPage(items, next)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bookingFilter(c *gin.Context) (queries.BookingFilter, bool) {
	var (
		filter queries.BookingFilter
		ok     bool
	)
	if filter.PropertyID, ok = queryUUID(c, "property_id"); !ok {
		return filter, false
	}
	if filter.CustomerID, ok = queryUUID(c, "customer_id"); !ok {
		return filter, false
	}
	if filter.CheckinFrom, ok = queryDate(c, "checkin_from"); !ok {
		return filter, false
	}
	if filter.CheckinTo, ok = queryDate(c, "checkin_to"); !ok {
		return filter, false
	}
	if v := c.Query("status"); v != "" {
		status, err := booking.ParseStatus(v)
		if err != nil {
			httperr.BadParam(c, "status", err)
			return filter, false
		}
		filter.Status = &status
	}
	return filter, true
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *BookingHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewBooking(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, res)
}

// @Summary Create booking
// @Description Omitted charges are priced from the property's rate profile; an explicit discount_amount overrides the coupon discount
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	id, err := h.bookings.CreateBooking(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary List booking payments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) ListPayments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.q.ListPayments(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewPayments(items)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": res})
}

// @Summary Record payment
// @Description The running total of payments may not exceed the booking total
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	if _, err := h.payments.RecordPayment(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Cancel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	if _, err := h.cancellations.CancelBooking(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary List cancellations
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param property_id query string false "Property ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.CancellationResponse]
// @Failure 400 {object} httperr.Response
// @Router /cancellations [get]
func (h *BookingHandler) ListCancellations(c *gin.Context) {
	cursor, limit, ok := page(c)
	if !ok {
		return
	}
	propertyID, ok := queryUUID(c, "property_id")
	if !ok {
		return
	}

	items, next, err := h.q.ListCancellations(c.Request.Context(), propertyID, cursor, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewCancellationPage(items, next)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
