package audit

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit/repository"
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
