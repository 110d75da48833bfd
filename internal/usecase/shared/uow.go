package shared

import (
	"context"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/cancellation"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/payment"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/domain/user"
	sqlc "rental-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: aggregate loads outside a transaction, e.g. credential checks
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Properties() PropertyRepository
	Coupons() CouponRepository
	Customers() CustomerRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Cancellations() CancellationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads hydrates write-side aggregates. Missing rows surface as
// infra.KindNotFound; callers translate to their own sentinel.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	SumByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (decimal.Decimal, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *cancellation.Cancellation) error
}
