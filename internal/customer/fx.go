package customer

import (
	"github.com/lucas-b-santos/invoice-dashboard/internal/customer/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("customer",
	fx.Provide(repository.Provide),
)
