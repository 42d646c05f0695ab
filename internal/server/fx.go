package server

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/render"
	"go.uber.org/fx"
)

var Module = fx.Module("server",
	fx.Provide(
		render.NewRenderer,
		NewEngine,
		NewServer,
	),
	fx.Invoke(
		(*Server).RegisterRoutes,
		RunHTTP,
	),
)
