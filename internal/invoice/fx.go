package invoice

import (
	"github.com/1913176/ess-billing/internal/invoice/repository"
	"github.com/1913176/ess-billing/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
