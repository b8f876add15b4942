package catalog

import (
	"github.com/1913176/ess-billing/internal/catalog/repository"
	"github.com/1913176/ess-billing/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
