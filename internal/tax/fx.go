package tax

import (
	"github.com/1913176/ess-billing/internal/tax/repository"
	"github.com/1913176/ess-billing/internal/tax/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
