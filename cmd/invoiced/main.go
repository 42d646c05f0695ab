package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth"
	"github.com/lucas-b-santos/invoice-dashboard/internal/clock"
	"github.com/lucas-b-santos/invoice-dashboard/internal/config"
	"github.com/lucas-b-santos/invoice-dashboard/internal/customer"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice"
	"github.com/lucas-b-santos/invoice-dashboard/internal/migration"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/logger"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/metrics"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/tracing"
	"github.com/lucas-b-santos/invoice-dashboard/internal/seed"
	"github.com/lucas-b-santos/invoice-dashboard/internal/server"
	"github.com/lucas-b-santos/invoice-dashboard/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		metrics.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if err := seed.EnsureAdminUser(conn); err != nil {
				return err
			}
			if cfg.SeedDemoData {
				return seed.EnsureDemoData(conn)
			}
			return nil
		}),
		customer.Module,
		invoice.Module,
		auth.Module,
		audit.Module,
		server.Module,
	)
	app.Run()
}
