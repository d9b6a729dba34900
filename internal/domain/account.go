package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/draffle-lab/client/internal/client"
	"github.com/draffle-lab/client/internal/domain/rafflestate"
	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/internal/model"
	"github.com/draffle-lab/client/internal/repository"
	"github.com/draffle-lab/client/pkg/enum"
	"github.com/draffle-lab/client/pkg/errorx"
	"github.com/draffle-lab/client/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type AccountDomain interface {
	GetMyAccount(context.Context, *model.GetMyAccountRequest) (*model.GetMyAccountResponse, error)
	GetDanglingAllowances(context.Context, *model.GetDanglingAllowancesRequest) (*model.GetDanglingAllowancesResponse, error)
}

type accountDomain struct {
	ledgerCaller client.LedgerCaller
	raffleCaller client.RaffleCaller
	sagaRepo     repository.SagaRepository

	now func() int64
}

func NewAccountDomain(
	ledgerCaller client.LedgerCaller,
	raffleCaller client.RaffleCaller,
	sagaRepo repository.SagaRepository,
) *accountDomain {
	return &accountDomain{
		ledgerCaller: ledgerCaller,
		raffleCaller: raffleCaller,
		sagaRepo:     sagaRepo,
		now:          func() int64 { return time.Now().UnixNano() },
	}
}

func (d *accountDomain) GetMyAccount(
	ctx context.Context, req *model.GetMyAccountRequest,
) (*model.GetMyAccountResponse, error) {
	principal := xcontext.RequestPrincipal(ctx)
	if principal == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please connect your wallet first")
	}

	var balance int64
	var symbol string
	var records []entity.RaffleRecord

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		balance, err = d.ledgerCaller.BalanceOf(egCtx, principal)
		return err
	})
	eg.Go(func() error {
		var err error
		symbol, err = d.ledgerCaller.Symbol(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		records, err = d.raffleCaller.GetAllRaffles(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load account overview: %v", err)
		return nil, client.Classify(err, errorx.BadResponse)
	}

	created := []entity.RaffleRecord{}
	candidates := []entity.RaffleRecord{}
	for _, record := range records {
		if record.Creator == principal {
			created = append(created, record)
		} else {
			candidates = append(candidates, record)
		}
	}

	participated := d.collectParticipated(ctx, candidates)

	now := d.now()
	resp := &model.GetMyAccountResponse{
		Principal:        principal,
		Balance:          balance,
		Symbol:           symbol,
		Created:          convertRaffles(created, now),
		Participated:     convertRaffles(participated, now),
		TotalWinnings:    rafflestate.TotalWinnings(participated, principal),
		TotalCreatedPool: rafflestate.TotalCreatedPool(created),
	}

	return resp, nil
}

// collectParticipated issues one entries query per candidate raffle. The
// queries are independent: a failing raffle is logged and excluded, the rest
// of the partition is unaffected, and completion order cannot change the
// result because it is re-sorted by raffle ID.
func (d *accountDomain) collectParticipated(
	ctx context.Context, candidates []entity.RaffleRecord,
) []entity.RaffleRecord {
	results := xsync.NewMapOf[entity.RaffleRecord]()

	eg := &errgroup.Group{}
	eg.SetLimit(8)
	for _, candidate := range candidates {
		candidate := candidate
		eg.Go(func() error {
			entries, err := d.raffleCaller.GetUserEntries(ctx, candidate.ID)
			if err != nil {
				xcontext.Logger(ctx).Warnf(
					"Cannot get entries of raffle %d, excluded from overview: %v",
					candidate.ID, err)
				return nil
			}

			if len(entries) > 0 {
				results.Store(strconv.FormatInt(candidate.ID, 10), candidate)
			}

			return nil
		})
	}
	eg.Wait()

	participated := []entity.RaffleRecord{}
	results.Range(func(key string, record entity.RaffleRecord) bool {
		participated = append(participated, record)
		return true
	})

	slices.SortFunc(participated, func(a, b entity.RaffleRecord) bool {
		return a.ID < b.ID
	})

	return participated
}

func (d *accountDomain) GetDanglingAllowances(
	ctx context.Context, req *model.GetDanglingAllowancesRequest,
) (*model.GetDanglingAllowancesResponse, error) {
	principal := xcontext.RequestPrincipal(ctx)
	if principal == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Please connect your wallet first")
	}

	sagas, err := d.sagaRepo.GetDangling(ctx, principal)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get dangling allowances: %v", err)
		return nil, errorx.Unknown
	}

	allowances := []model.DanglingAllowance{}
	for _, saga := range sagas {
		allowances = append(allowances, model.DanglingAllowance{
			SagaID:   saga.ID,
			Kind:     enum.ToString(saga.Kind),
			RaffleID: saga.RaffleID,
			Amount:   saga.Amount,
		})
	}

	return &model.GetDanglingAllowancesResponse{Allowances: allowances}, nil
}
