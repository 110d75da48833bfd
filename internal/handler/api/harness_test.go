//go:build unit

package api_test

import (
	"testing"

	"rental-admin/internal/domain/user"
	"rental-admin/internal/handler/middleware"
	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/config"
	"rental-admin/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// securedRouter authenticates every route with real access tokens minted by the returned helper.
type securedRouter struct {
	*gin.Engine
	auth *middleware.AuthMiddleware
	jwt  *authtest.JWTHelper
}

func newSecuredRouter(t *testing.T) *securedRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	r := &securedRouter{Engine: gin.New(), jwt: helper, auth: helper.Middleware(t)}
	r.Use(middleware.ErrorHandler(), r.auth.RequireAuth())
	return r
}

func (r *securedRouter) token(t *testing.T, role user.Role) string {
	t.Helper()
	return r.jwt.GenerateToken(t, uuid.New(), role)
}

type couponRecorder struct {
	results []string
}

func (r *couponRecorder) CouponChecked(result string) {
	r.results = append(r.results, result)
}
