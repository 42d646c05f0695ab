package metrics

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(func(cfg config.Config) Config {
		return Config{ServiceName: cfg.ServiceName}
	}),
	fx.Provide(func() metric.MeterProvider {
		return otel.GetMeterProvider()
	}),
	fx.Provide(NewHTTPMetrics),
)
