package main

import (
	"github.com/1913176/ess-billing/internal/clock"
	"github.com/1913176/ess-billing/internal/config"
	"github.com/1913176/ess-billing/internal/migration"
	"github.com/1913176/ess-billing/internal/observability"
	"github.com/1913176/ess-billing/internal/server"
	"github.com/1913176/ess-billing/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface and domain modules
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
