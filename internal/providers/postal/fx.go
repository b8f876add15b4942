package postal

import (
	"github.com/1913176/ess-billing/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.postal",
	fx.Provide(func(cfg config.Config, log *zap.Logger) Client {
		return NewClient(cfg.PostalLookupBaseURL, log)
	}),
)
