//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/handler/api"
	resdto "rental-admin/internal/handler/dto/response"
	"rental-admin/internal/usecase/commands"
	"rental-admin/internal/usecase/queries"
	"rental-admin/tests/common/builder"
	"rental-admin/tests/common/httptest"
	"rental-admin/tests/common/testutil"
	commandsmock "rental-admin/tests/mock/commands"
	queriesmock "rental-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *securedRouter
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	recorder     *couponRecorder
	token        string
}

func (s *CouponHandlerTestSuite) SetupTest() {
	s.router = newSecuredRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.recorder = &couponRecorder{}
	s.token = s.router.token(s.T(), user.RoleAdmin)

	h := api.NewCouponHandler(s.mockCommands, s.mockQueries, s.recorder)
	s.router.GET("/coupons", h.List)
	s.router.GET("/coupons/:id", h.Get)
	s.router.POST("/coupons", h.Create)
	s.router.PUT("/coupons/:id", h.Update)
	s.router.DELETE("/coupons/:id", h.Delete)
	s.router.POST("/coupons/check", h.Check)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestCreate() {
	b := builder.NewCouponBuilder()
	reqBody := b.BuildRequestDTO()
	id := uuid.New()

	s.Run("success: 201 with the stored coupon", func() {
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, actor auth.Principal, p coupon.Params) (uuid.UUID, error) {
				s.Equal(user.RoleAdmin, actor.Role)
				s.Equal(b.Code, p.Code)
				s.Equal(b.ValidFrom, p.ValidFrom)
				s.Equal([]time.Weekday{time.Friday, time.Saturday}, p.Weekdays)
				s.True(p.DiscountValue.Equal(b.DiscountValue))
				s.True(p.IsActive)
				return id, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(b.BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons", reqBody, s.token)

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response.ID)
		s.Equal("2025-06-01", response.ValidFrom)
		s.Equal([]string{"FRIDAY", "SATURDAY"}, response.Weekdays)
		s.Equal([]string{b.PropertyIDs[0].String()}, response.PropertyIDs)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"code too short", testutil.Field("code", "AB")},
			{"valid_from not a date", testutil.Field("valid_from", "01/06/2025")},
			{"unknown discount type", testutil.Field("discount_type", "BOGO")},
			{"no weekdays", testutil.Field("weekdays", []string{})},
			{"weekday misspelt", testutil.Field("weekdays", []string{"FRI"})},
			{"no linked property", testutil.Field("property_ids", []string{})},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons", body, s.token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"duplicate code", commands.ErrCouponCodeTaken, http.StatusConflict},
			{"unknown property", commands.ErrUnknownLinkedProperty, http.StatusBadRequest},
			{"window inverted", coupon.ErrValidityReversed, http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons", reqBody, s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestUpdateAndDelete() {
	b := builder.NewCouponBuilder()
	id := uuid.New()

	s.Run("update: 200 with the replaced coupon", func() {
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(b.BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPut, "/coupons/"+id.String(), b.BuildRequestDTO(), s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("update: 404 for an unknown coupon", func() {
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPut, "/coupons/"+id.String(), b.BuildRequestDTO(), s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found")
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().DeleteCoupon(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodDelete, "/coupons/"+id.String(), nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodDelete, "/coupons/not-a-uuid", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CouponHandlerTestSuite) TestList() {
	b := builder.NewCouponBuilder()
	first, second := uuid.New(), uuid.New()

	s.Run("success: passes the active filter and returns the next cursor", func() {
		active := true
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CouponFilter{IsActive: &active}, nil, 2).
			Return([]*queries.CouponView{b.BuildView(first), b.BuildView(second)}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/coupons?active=true&limit=2", nil, s.token)

		var response resdto.Page[resdto.CouponResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next", response.NextCursor)
	})

	s.Run("error: 400 for a bad active flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/coupons?active=maybe", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid active")
	})

	s.Run("error: 400 for a forged cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "forged"}, queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/coupons?after=forged", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *CouponHandlerTestSuite) TestCheck() {
	propertyID := uuid.New()
	couponID := uuid.New()
	body := map[string]any{
		"code":        "SUMMER25",
		"property_id": propertyID.String(),
		"date":        "2025-06-06",
		"charge":      "5000",
	}

	s.Run("success: applicable night reports the discount", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.CheckCouponRequest) (*queries.CouponCheck, error) {
				s.Equal(propertyID, req.PropertyID)
				s.Equal(builder.Date(2025, time.June, 6), req.Date)
				s.True(req.Charge.Equal(decimal.NewFromInt(5000)))
				return &queries.CouponCheck{CouponID: couponID, Code: "SUMMER25", Applicable: true, Discount: decimal.NewFromInt(1000)}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons/check", body, s.token)

		var response resdto.CouponCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Applicable)
		s.Empty(response.Reason)
		s.True(response.Discount.Equal(decimal.NewFromInt(1000)))
		s.Equal([]string{"APPLICABLE"}, s.recorder.results)
	})

	s.Run("success: ineligible night reports the reason", func() {
		s.recorder.results = nil
		s.mockQueries.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(&queries.CouponCheck{CouponID: couponID, Code: "SUMMER25", Reason: coupon.ReasonWeekdayExcluded, Discount: decimal.Zero}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons/check", body, s.token)

		var response resdto.CouponCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Applicable)
		s.Equal("WEEKDAY_EXCLUDED", response.Reason)
		s.Equal([]string{"WEEKDAY_EXCLUDED"}, s.recorder.results)
	})

	s.Run("error: 404 for an unknown code", func() {
		s.recorder.results = nil
		s.mockQueries.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons/check", body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found")
		s.Empty(s.recorder.results)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/coupons/check",
			testutil.DtoMap(s.T(), body, testutil.Field("date", nil)), s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CouponHandlerTestSuite) TestRequiresAuth() {
	rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/coupons", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
}
