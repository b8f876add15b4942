package migration

import (
	"github.com/1913176/ess-billing/internal/config"
	"github.com/1913176/ess-billing/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql run from the model definitions; the
			// versioned SQL is written for postgres.
			if err := AutoMigrate(conn); err != nil {
				return err
			}
		}

		if err := seed.EnsureGSTRates(conn); err != nil {
			return err
		}
		if err := seed.EnsureSalespersons(conn); err != nil {
			return err
		}
		if cfg.SeedDemoData {
			return seed.EnsureDemoCatalog(conn)
		}
		return nil
	}),
)
