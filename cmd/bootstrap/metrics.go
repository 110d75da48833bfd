package bootstrap

import (
	"rental-admin/internal/handler/api"
	"rental-admin/internal/infra/metrics"
	"rental-admin/internal/pkg/config"
	"rental-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func(cfg config.Config) *metrics.Metrics {
			return metrics.New(cfg.Metrics)
		},
		func(m *metrics.Metrics) commands.BookingMetrics { return m },
		func(m *metrics.Metrics) api.CouponCheckRecorder { return m },
	),
)
