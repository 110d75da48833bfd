package api

import (
	"net/http"

	reqdto "rental-admin/internal/handler/dto/request"
	resdto "rental-admin/internal/handler/dto/response"
	"rental-admin/internal/handler/httperr"
	"rental-admin/internal/usecase/commands"
	"rental-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const couponApplicable = "APPLICABLE"

type CouponCheckRecorder interface {
	CouponChecked(result string)
}

type CouponHandler struct {
	cmds    commands.CouponCommands
	q       queries.CouponQueries
	metrics CouponCheckRecorder
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries, metrics CouponCheckRecorder) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q, metrics: metrics}
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.CouponResponse]
// @Failure 400 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	cursor, limit, ok := page(c)
	if !ok {
		return
	}
	active, ok := queryBool(c, "active")
	if !ok {
		return
	}

	items, next, err := h.q.List(c.Request.Context(), queries.CouponFilter{IsActive: active}, cursor, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewCouponPage(items, next)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *CouponHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.NewCoupon(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, res)
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	id, err := h.cmds.CreateCoupon(c.Request.Context(), actor, params)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Replace coupon
// @Description Replaces the coupon and its linked property set
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.cmds.UpdateCoupon(c.Request.Context(), actor, id, params); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCoupon(c.Request.Context(), actor, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check coupon
// @Description Reports whether a coupon applies to one night at a property and the discount it would give
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckCouponRequest true "Night to check"
// @Success 200 {object} resdto.CouponCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/check [post]
func (h *CouponHandler) Check(c *gin.Context) {
	var req reqdto.CheckCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	check, err := h.q.Check(c.Request.Context(), query)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	result := couponApplicable
	if !check.Applicable {
		result = string(check.Reason)
	}
	h.metrics.CouponChecked(result)

	c.JSON(http.StatusOK, resdto.NewCouponCheck(check))
}
