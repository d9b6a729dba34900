package domain

import (
	"context"
	"strings"
	"time"

	"github.com/draffle-lab/client/internal/client"
	"github.com/draffle-lab/client/internal/domain/pricing"
	"github.com/draffle-lab/client/internal/domain/rafflestate"
	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/internal/model"
	"github.com/draffle-lab/client/internal/repository"
	"github.com/draffle-lab/client/pkg/errorx"
	"github.com/draffle-lab/client/pkg/xcontext"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type RaffleDomain interface {
	GetAllRaffles(context.Context, *model.GetAllRafflesRequest) (*model.GetAllRafflesResponse, error)
	GetRaffleDetail(context.Context, *model.GetRaffleDetailRequest) (*model.GetRaffleDetailResponse, error)
	CreateRaffle(context.Context, *model.CreateRaffleRequest) (*model.CreateRaffleResponse, error)
	BuyEntries(context.Context, *model.BuyEntriesRequest) (*model.BuyEntriesResponse, error)
}

type raffleDomain struct {
	ledgerCaller client.LedgerCaller
	raffleCaller client.RaffleCaller
	sagaRepo     repository.SagaRepository

	// One purchase attempt in flight per surface and principal. Re-entrant
	// submissions are rejected, never queued.
	saving *xsync.MapOf[string, struct{}]

	now func() int64
}

func NewRaffleDomain(
	ledgerCaller client.LedgerCaller,
	raffleCaller client.RaffleCaller,
	sagaRepo repository.SagaRepository,
) *raffleDomain {
	return &raffleDomain{
		ledgerCaller: ledgerCaller,
		raffleCaller: raffleCaller,
		sagaRepo:     sagaRepo,
		saving:       xsync.NewMapOf[struct{}](),
		now:          func() int64 { return time.Now().UnixNano() },
	}
}

func (d *raffleDomain) GetAllRaffles(
	ctx context.Context, req *model.GetAllRafflesRequest,
) (*model.GetAllRafflesResponse, error) {
	records, err := d.raffleCaller.GetAllRaffles(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffles: %v", err)
		return nil, errorx.Unknown
	}

	now := d.now()
	raffles := []model.Raffle{}
	for _, record := range records {
		raffles = append(raffles, convertRaffle(record, now))
	}

	return &model.GetAllRafflesResponse{Raffles: raffles}, nil
}

func (d *raffleDomain) GetRaffleDetail(
	ctx context.Context, req *model.GetRaffleDetailRequest,
) (*model.GetRaffleDetailResponse, error) {
	record, err := d.raffleCaller.GetRaffleDetail(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffle detail of %d: %v", req.RaffleID, err)
		return nil, client.Classify(err, errorx.BadResponse)
	}

	// Entries are shown only to an authenticated caller; a failed entries
	// fetch degrades the view, it does not fail it.
	var entries []int64
	if xcontext.RequestPrincipal(ctx) != "" {
		entries, err = d.raffleCaller.GetUserEntries(ctx, req.RaffleID)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get entries of raffle %d: %v", req.RaffleID, err)
			entries = nil
		}
		slices.Sort(entries)
	}

	now := d.now()
	return &model.GetRaffleDetailResponse{
		Raffle:      convertRaffle(record, now),
		UserEntries: entries,
		CanBuy:      rafflestate.CanBuyEntries(record, now),
	}, nil
}

func (d *raffleDomain) CreateRaffle(
	ctx context.Context, req *model.CreateRaffleRequest,
) (*model.CreateRaffleResponse, error) {
	principal := xcontext.RequestPrincipal(ctx)
	if principal == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please connect your wallet first")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.New(errorx.BadRequest, "Please enter a raffle title")
	}

	if req.EntryPrice < 1 || req.InitialPrize < 1 {
		return nil, errorx.New(errorx.BadRequest, "Entry price and initial prize must be at least 1")
	}

	if req.Duration <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Duration must be positive")
	}

	release, err := d.acquire("create", principal)
	if err != nil {
		return nil, err
	}
	defer release()

	var created entity.RaffleRecord
	err = d.executePurchase(ctx, purchaseAttempt{
		kind:          entity.SagaKindCreateRaffle,
		principal:     principal,
		displayAmount: req.InitialPrize,
		params: entity.Map{
			"title":         req.Title,
			"entry_price":   req.EntryPrice,
			"initial_prize": req.InitialPrize,
			"duration":      req.Duration,
		},
		privileged: func(ctx context.Context) error {
			var err error
			created, err = d.raffleCaller.StartRaffle(ctx, client.StartRaffleArgs{
				Title:        strings.TrimSpace(req.Title),
				EntryPrice:   req.EntryPrice,
				InitialPrize: req.InitialPrize,
				Duration:     req.Duration,
			})
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	return &model.CreateRaffleResponse{Raffle: convertRaffle(created, d.now())}, nil
}

func (d *raffleDomain) BuyEntries(
	ctx context.Context, req *model.BuyEntriesRequest,
) (*model.BuyEntriesResponse, error) {
	principal := xcontext.RequestPrincipal(ctx)
	if principal == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please connect your wallet first")
	}

	if req.Quantity < 1 {
		return nil, errorx.New(errorx.InvalidQuantity, "Number of entries must be at least 1")
	}

	record, err := d.raffleCaller.GetRaffleDetail(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffle detail of %d: %v", req.RaffleID, err)
		return nil, client.Classify(err, errorx.BadResponse)
	}

	cost, err := pricing.EntryCost(record.EntryPrice, req.Quantity)
	if err != nil {
		return nil, err
	}

	release, err := d.acquire("buy", principal)
	if err != nil {
		return nil, err
	}
	defer release()

	err = d.executePurchase(ctx, purchaseAttempt{
		kind:          entity.SagaKindBuyEntries,
		principal:     principal,
		raffleID:      req.RaffleID,
		displayAmount: cost,
		params: entity.Map{
			"raffle_id": req.RaffleID,
			"quantity":  req.Quantity,
		},
		privileged: func(ctx context.Context) error {
			return d.raffleCaller.BuyEntries(ctx, req.RaffleID, req.Quantity)
		},
	})
	if err != nil {
		return nil, err
	}

	// Re-fetch the mutated record and the caller's entries so the view can
	// rebuild from fresh state.
	fresh, err := d.raffleCaller.GetRaffleDetail(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh raffle %d after purchase: %v", req.RaffleID, err)
		fresh = record
	}

	entries, err := d.raffleCaller.GetUserEntries(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh entries of raffle %d: %v", req.RaffleID, err)
		entries = nil
	}
	slices.Sort(entries)

	return &model.BuyEntriesResponse{
		Raffle:      convertRaffle(fresh, d.now()),
		UserEntries: entries,
	}, nil
}

type purchaseAttempt struct {
	kind          entity.SagaKind
	principal     string
	raffleID      int64
	displayAmount int64
	params        entity.Map
	privileged    func(context.Context) error
}

// executePurchase runs the approve-then-call protocol as one logical unit of
// work. The two remote calls have no cross-service atomicity, so each step
// boundary is journaled: a saga row left in allowance_granted names an
// allowance the ledger still holds for the raffle service.
func (d *raffleDomain) executePurchase(ctx context.Context, attempt purchaseAttempt) error {
	var fee, balance int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		fee, err = d.ledgerCaller.Fee(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		balance, err = d.ledgerCaller.BalanceOf(egCtx, attempt.principal)
		return err
	})
	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read ledger fee or balance: %v", err)
		return client.Classify(err, errorx.BadResponse)
	}

	scalingFactor := xcontext.Configs(ctx).Token.ScalingFactor
	required := pricing.RequiredAllowance(attempt.displayAmount, scalingFactor, fee)
	if !pricing.HasSufficientBalance(balance, required, fee) {
		return errorx.New(errorx.InsufficientBalance, "Insufficient balance")
	}

	saga := &entity.PurchaseSaga{
		Base:      entity.Base{ID: uuid.NewString()},
		Kind:      attempt.kind,
		Principal: attempt.principal,
		RaffleID:  attempt.raffleID,
		Amount:    required,
		State:     entity.SagaStateStarted,
		Params:    attempt.params,
	}
	d.journal(ctx, func(ctx context.Context) error {
		return d.sagaRepo.Create(ctx, saga)
	})

	err := d.ledgerCaller.Approve(ctx, client.ApproveArgs{
		Spender: xcontext.Configs(ctx).RaffleService.Principal,
		Amount:  required,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Ledger rejected approval of %d: %v", required, err)
		classified := client.Classify(err, errorx.AllowanceFailed)
		d.journal(ctx, func(ctx context.Context) error {
			return d.sagaRepo.MarkFailed(ctx, saga.ID, classified.Error())
		})
		return classified
	}

	d.journal(ctx, func(ctx context.Context) error {
		return d.sagaRepo.UpdateState(ctx, saga.ID, entity.SagaStateAllowanceGranted)
	})

	if err := attempt.privileged(ctx); err != nil {
		// The allowance stays outstanding; this client never revokes it. The
		// saga row keeps the allowance_granted state so the dangling amount
		// stays observable.
		xcontext.Logger(ctx).Errorf("Raffle service rejected %s: %v", attempt.kind, err)
		classified := client.Classify(err, errorx.OperationFailed)
		d.journal(ctx, func(ctx context.Context) error {
			return d.sagaRepo.SetReason(ctx, saga.ID, classified.Error())
		})
		return classified
	}

	d.journal(ctx, func(ctx context.Context) error {
		return d.sagaRepo.UpdateState(ctx, saga.ID, entity.SagaStateOperationApplied)
	})

	return nil
}

// journal writes saga telemetry; a journal failure is logged and never fails
// the purchase itself.
func (d *raffleDomain) journal(ctx context.Context, write func(context.Context) error) {
	if err := write(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write purchase journal: %v", err)
	}
}

func (d *raffleDomain) acquire(surface, principal string) (func(), error) {
	key := surface + "/" + principal
	if _, loaded := d.saving.LoadOrStore(key, struct{}{}); loaded {
		return nil, errorx.New(errorx.Unavailable, "Another attempt is already in progress")
	}

	return func() { d.saving.Delete(key) }, nil
}
