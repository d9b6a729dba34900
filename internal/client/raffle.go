package client

import (
	"context"
	"fmt"

	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/pkg/xcontext"
	"github.com/ethereum/go-ethereum/rpc"
)

// StartRaffleArgs carries the domain parameters of a new raffle. Duration is
// in seconds; the service derives start and end times itself.
type StartRaffleArgs struct {
	Title        string `json:"title"`
	EntryPrice   int64  `json:"entryPrice"`
	InitialPrize int64  `json:"initialPrize"`
	Duration     int64  `json:"duration"`
}

type RaffleCaller interface {
	GetAllRaffles(ctx context.Context) ([]entity.RaffleRecord, error)
	GetRaffleDetail(ctx context.Context, id int64) (entity.RaffleRecord, error)
	GetUserEntries(ctx context.Context, id int64) ([]int64, error)
	StartRaffle(ctx context.Context, args StartRaffleArgs) (entity.RaffleRecord, error)
	BuyEntries(ctx context.Context, id, quantity int64) error
	Close()
}

type raffleCaller struct {
	client *rpc.Client
}

func NewRaffleCaller(client *rpc.Client) *raffleCaller {
	return &raffleCaller{client: client}
}

func (c *raffleCaller) GetAllRaffles(ctx context.Context) ([]entity.RaffleRecord, error) {
	var result []entity.RaffleRecord
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "getAllRaffles"))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *raffleCaller) GetRaffleDetail(ctx context.Context, id int64) (entity.RaffleRecord, error) {
	var result entity.RaffleRecord
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "getRaffleDetail"), id)
	if err != nil {
		return entity.RaffleRecord{}, err
	}

	return result, nil
}

// GetUserEntries returns the entry indices the calling principal owns for the
// given raffle. The principal travels with the request so the service answers
// for the right identity.
func (c *raffleCaller) GetUserEntries(ctx context.Context, id int64) ([]int64, error) {
	var result []int64
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "getUserEntries"),
		id, xcontext.RequestPrincipal(ctx))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *raffleCaller) StartRaffle(ctx context.Context, args StartRaffleArgs) (entity.RaffleRecord, error) {
	var result entity.RaffleRecord
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "startRaffle"),
		args, xcontext.RequestPrincipal(ctx))
	if err != nil {
		return entity.RaffleRecord{}, err
	}

	return result, nil
}

func (c *raffleCaller) BuyEntries(ctx context.Context, id, quantity int64) error {
	return c.client.CallContext(ctx, nil, c.fname(ctx, "buyEntries"),
		id, quantity, xcontext.RequestPrincipal(ctx))
}

func (c *raffleCaller) Close() {
	c.client.Close()
}

func (c *raffleCaller) fname(ctx context.Context, funcName string) string {
	return fmt.Sprintf("%s_%s", xcontext.Configs(ctx).RaffleService.RPCName, funcName)
}
