package auth

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/repository"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
