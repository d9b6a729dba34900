package testutil

import (
	"context"

	"github.com/draffle-lab/client/internal/client"
	"github.com/draffle-lab/client/internal/entity"
)

type MockRaffleCaller struct {
	GetAllRafflesFunc   func(ctx context.Context) ([]entity.RaffleRecord, error)
	GetRaffleDetailFunc func(ctx context.Context, id int64) (entity.RaffleRecord, error)
	GetUserEntriesFunc  func(ctx context.Context, id int64) ([]int64, error)
	StartRaffleFunc     func(ctx context.Context, args client.StartRaffleArgs) (entity.RaffleRecord, error)
	BuyEntriesFunc      func(ctx context.Context, id, quantity int64) error
}

func (c *MockRaffleCaller) GetAllRaffles(ctx context.Context) ([]entity.RaffleRecord, error) {
	if c.GetAllRafflesFunc != nil {
		return c.GetAllRafflesFunc(ctx)
	}

	return nil, nil
}

func (c *MockRaffleCaller) GetRaffleDetail(ctx context.Context, id int64) (entity.RaffleRecord, error) {
	if c.GetRaffleDetailFunc != nil {
		return c.GetRaffleDetailFunc(ctx, id)
	}

	return entity.RaffleRecord{}, nil
}

func (c *MockRaffleCaller) GetUserEntries(ctx context.Context, id int64) ([]int64, error) {
	if c.GetUserEntriesFunc != nil {
		return c.GetUserEntriesFunc(ctx, id)
	}

	return nil, nil
}

func (c *MockRaffleCaller) StartRaffle(ctx context.Context, args client.StartRaffleArgs) (entity.RaffleRecord, error) {
	if c.StartRaffleFunc != nil {
		return c.StartRaffleFunc(ctx, args)
	}

	return entity.RaffleRecord{}, nil
}

func (c *MockRaffleCaller) BuyEntries(ctx context.Context, id, quantity int64) error {
	if c.BuyEntriesFunc != nil {
		return c.BuyEntriesFunc(ctx, id, quantity)
	}

	return nil
}

func (c *MockRaffleCaller) Close() {}
