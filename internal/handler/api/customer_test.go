//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-admin/internal/domain/customer"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *securedRouter
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	token        string
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.router = newSecuredRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.token = s.router.token(s.T(), user.RoleOperator)

	h := api.NewCustomerHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/customers", h.List)
	s.router.GET("/customers/:id", h.Get)
	s.router.POST("/customers", h.Create)
	s.router.PUT("/customers/:id", h.Update)
	s.router.DELETE("/customers/:id", h.Delete)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestCreate() {
	b := builder.NewCustomerBuilder()
	reqBody := b.BuildRequestDTO()
	id := uuid.New()

	s.Run("success: 201 with the stored customer", func() {
		s.mockCommands.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), customer.Params{
			Name: b.Name, Email: b.Email, Phone: b.Phone,
		}).Return(id, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(b.BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/customers", reqBody, s.token)

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response.ID)
		s.Equal(b.Email, response.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "bad email", mutate: testutil.Field("email", "asha"), expectCode: http.StatusBadRequest},
			{name: "phone too long", mutate: testutil.Field("phone", "+91 98450 12345 67890 1"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/customers",
					testutil.DtoMap(s.T(), reqBody, tc.mutate), s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})
}

func (s *CustomerHandlerTestSuite) TestUpdateAndDelete() {
	b := builder.NewCustomerBuilder()
	id := uuid.New()

	s.Run("update: 200", func() {
		s.mockCommands.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(b.BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPut, "/customers/"+id.String(), b.BuildRequestDTO(), s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("delete: 409 while bookings reference the customer", func() {
		s.mockCommands.EXPECT().DeleteCustomer(gomock.Any(), gomock.Any(), id).Return(commands.ErrCustomerInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodDelete, "/customers/"+id.String(), nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrCustomerInUse.Error())
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().DeleteCustomer(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodDelete, "/customers/"+id.String(), nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *CustomerHandlerTestSuite) TestGetAndList() {
	b := builder.NewCustomerBuilder()
	id := uuid.New()

	s.Run("get: 404 for an unknown customer", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/customers/"+id.String(), nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "customer not found")
	})

	s.Run("list: forwards the search term", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "asha", nil, queries.DefaultListLimit).
			Return([]*queries.CustomerView{b.BuildView(id)}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/customers?q=asha", nil, s.token)

		var response resdto.Page[resdto.CustomerResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(b.Name, response.Items[0].Name)
	})

	s.Run("list: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/customers?limit=ten", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}
