package testutil

import (
	"context"

	"github.com/draffle-lab/client/config"
	"github.com/draffle-lab/client/migration"
	"github.com/draffle-lab/client/pkg/logger"
	"github.com/draffle-lab/client/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	cfg.Env = "testing"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithPrincipal(principal string) context.Context {
	return xcontext.WithRequestPrincipal(MockContext(), principal)
}
