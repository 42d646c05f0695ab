package invoice

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/repository"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
