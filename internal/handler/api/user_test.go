//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"rental-admin/internal/domain/auth"
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

type UserHandlerTestSuite struct {
	suite.Suite
	router       *securedRouter
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	adminID      uuid.UUID
	token        string
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router = newSecuredRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.adminID = uuid.New()
	s.token = s.router.jwt.GenerateToken(s.T(), s.adminID, user.RoleAdmin)

	h := api.NewUserHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/users", h.List)
	s.router.POST("/users", h.Create)
	s.router.PATCH("/users/:id/role", h.UpdateRole)
	s.router.POST("/users/:id/deactivate", h.Deactivate)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	created := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Email = "ops@example.com"
		b.Role = "operator"
	}).BuildReadModel()
	reqBody := map[string]any{"email": created.Email, "password": "password123", "role": "operator"}

	s.Run("success: 201 with the new account", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), gomock.Any(), commands.CreateUserRequest{
			Email: created.Email, Password: "password123", Role: "operator",
		}).DoAndReturn(func(_ context.Context, actor auth.Principal, _ commands.CreateUserRequest) (uuid.UUID, error) {
			s.Equal(s.adminID, actor.UserID)
			return created.ID, nil
		}).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), created.ID).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/users", reqBody, s.token)

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("operator", response.Role)
		s.Equal(created.CreatedAt.Unix(), response.CreatedAt)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "unknown role", mutate: testutil.Field("role", "owner"), expectCode: http.StatusBadRequest},
			{name: "short password", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest},
			{name: "bad email", mutate: testutil.Field("email", "ops"), expectCode: http.StatusBadRequest},
			{name: "missing role", mutate: testutil.Field("role", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/users",
					testutil.DtoMap(s.T(), reqBody, tc.mutate), s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 for a taken email", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, "/users", reqBody, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrEmailTaken.Error())
	})
}

func (s *UserHandlerTestSuite) TestUpdateRole() {
	target := uuid.New()
	url := "/users/" + target.String() + "/role"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdateUserRole(gomock.Any(), gomock.Any(), target, "viewer").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPatch, url, map[string]any{"role": "viewer"}, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when changing your own role", func() {
		s.mockCommands.EXPECT().UpdateUserRole(gomock.Any(), gomock.Any(), s.adminID, "viewer").
			Return(user.ErrSelfModification).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPatch, "/users/"+s.adminID.String()+"/role",
			map[string]any{"role": "viewer"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, user.ErrSelfModification.Error())
	})

	s.Run("error: 400 for an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPatch, url, map[string]any{"role": "root"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestDeactivate() {
	target := uuid.New()
	url := "/users/" + target.String() + "/deactivate"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeactivateUser(gomock.Any(), gomock.Any(), target).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already inactive", func() {
		s.mockCommands.EXPECT().DeactivateUser(gomock.Any(), gomock.Any(), target).Return(user.ErrAlreadyInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, user.ErrAlreadyInactive.Error())
	})

	s.Run("error: 404 for an unknown user", func() {
		s.mockCommands.EXPECT().DeactivateUser(gomock.Any(), gomock.Any(), target).Return(queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodPost, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	users := []*queries.UserView{builder.NewUserBuilder().BuildReadModel()}
	s.mockQueries.EXPECT().List(gomock.Any(), nil, 50).Return(users, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router.Engine, http.MethodGet, "/users?limit=50", nil, s.token)

	var response resdto.Page[resdto.UserResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Items, 1)
	s.Equal(users[0].Email, response.Items[0].Email)
}
