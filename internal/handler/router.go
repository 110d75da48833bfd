package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-admin/internal/domain/user"
	"rental-admin/internal/handler/api"
	"rental-admin/internal/handler/middleware"
	"rental-admin/internal/infra/metrics"
	"rental-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Property *api.PropertyHandler
	Coupon   *api.CouponHandler
	Customer *api.CustomerHandler
	Booking  *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h, authMiddleware)
	engine.NoRoute(middleware.NoRoute())
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	viewer := authMiddleware.RequireRoleAtLeast(user.RoleViewer)
	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		secured := apiGroup.Group("")
		secured.Use(authMiddleware.RequireAuth(), viewer)

		addRoutes(secured.Group("/users"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPatch, Path: "/:id/role", Handler: h.User.UpdateRole, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.User.Deactivate, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(secured.Group("/properties"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Property.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get},
			{Method: http.MethodPost, Path: "/:id/quote", Handler: h.Property.Quote},
			{Method: http.MethodPost, Path: "", Handler: h.Property.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Property.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(secured.Group("/coupons"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Coupon.List},
			{Method: http.MethodPost, Path: "/check", Handler: h.Coupon.Check},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Coupon.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupon.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(secured.Group("/customers"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Create, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{operator}},
		})

		addRoutes(secured.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.ListPayments},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Booking.RecordPayment, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{operator}},
		})

		addRoutes(secured.Group("/cancellations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListCancellations},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
