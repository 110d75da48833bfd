package components

import (
	"rental-admin/internal/handler"
	"rental-admin/internal/handler/api"
	"rental-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewPropertyHandler,
		api.NewCouponHandler,
		api.NewCustomerHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	users *api.UserHandler,
	properties *api.PropertyHandler,
	coupons *api.CouponHandler,
	customers *api.CustomerHandler,
	bookings *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		User:     users,
		Property: properties,
		Coupon:   coupons,
		Customer: customers,
		Booking:  bookings,
	}
}
