// Package draffle wires the raffle client core: JSON-RPC callers for the
// raffle service and the ICRC-2 ledger, the purchase orchestration domains,
// and the countdown scheduler. A UI shell constructs one App and drives it
// through contexts prepared by NewContext.
package draffle

import (
	"context"

	"github.com/draffle-lab/client/config"
	"github.com/draffle-lab/client/internal/client"
	"github.com/draffle-lab/client/internal/domain"
	"github.com/draffle-lab/client/internal/domain/rafflestate"
	"github.com/draffle-lab/client/internal/repository"
	"github.com/draffle-lab/client/migration"
	"github.com/draffle-lab/client/pkg/logger"
	"github.com/draffle-lab/client/pkg/xcontext"
	"github.com/ethereum/go-ethereum/rpc"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type App struct {
	Raffle    domain.RaffleDomain
	Account   domain.AccountDomain
	Countdown *rafflestate.Scheduler

	cfg    config.Configs
	log    logger.Logger
	db     *gorm.DB
	ledger client.LedgerCaller
	raffle client.RaffleCaller
}

func NewApp(ctx context.Context, cfg config.Configs) (*App, error) {
	log := logger.NewLogger(cfg.LogLevel)

	ledgerRPC, err := rpc.DialContext(ctx, cfg.Ledger.URL)
	if err != nil {
		return nil, err
	}

	raffleRPC, err := rpc.DialContext(ctx, cfg.RaffleService.URL)
	if err != nil {
		ledgerRPC.Close()
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.SagaStore.DSN), &gorm.Config{})
	if err != nil {
		ledgerRPC.Close()
		raffleRPC.Close()
		return nil, err
	}

	app := &App{
		Countdown: rafflestate.NewScheduler(),

		cfg:    cfg,
		log:    log,
		db:     db,
		ledger: client.NewLedgerCaller(ledgerRPC),
		raffle: client.NewRaffleCaller(raffleRPC),
	}

	if err := migration.AutoMigrate(app.NewContext(ctx)); err != nil {
		app.Close()
		return nil, err
	}

	sagaRepo := repository.NewSagaRepository()
	app.Raffle = domain.NewRaffleDomain(app.ledger, app.raffle, sagaRepo)
	app.Account = domain.NewAccountDomain(app.ledger, app.raffle, sagaRepo)

	return app, nil
}

// NewContext attaches the app's configs, logger and journal database to a
// request context. The shell adds the authenticated principal with
// xcontext.WithRequestPrincipal before calling a domain.
func (a *App) NewContext(ctx context.Context) context.Context {
	ctx = xcontext.WithConfigs(ctx, a.cfg)
	ctx = xcontext.WithLogger(ctx, a.log)
	ctx = xcontext.WithDB(ctx, a.db)
	return ctx
}

func (a *App) Close() {
	a.Countdown.StopAll()
	a.ledger.Close()
	a.raffle.Close()
}
