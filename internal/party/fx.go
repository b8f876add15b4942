package party

import (
	"github.com/1913176/ess-billing/internal/party/repository"
	"github.com/1913176/ess-billing/internal/party/service"
	"go.uber.org/fx"
)

var Module = fx.Module("party.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
