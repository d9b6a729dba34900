package testutil

import (
	"context"

	"github.com/draffle-lab/client/internal/client"
)

type MockLedgerCaller struct {
	BalanceOfFunc func(ctx context.Context, owner string) (int64, error)
	FeeFunc       func(ctx context.Context) (int64, error)
	SymbolFunc    func(ctx context.Context) (string, error)
	ApproveFunc   func(ctx context.Context, args client.ApproveArgs) error
}

func (c *MockLedgerCaller) BalanceOf(ctx context.Context, owner string) (int64, error) {
	if c.BalanceOfFunc != nil {
		return c.BalanceOfFunc(ctx, owner)
	}

	return 0, nil
}

func (c *MockLedgerCaller) Fee(ctx context.Context) (int64, error) {
	if c.FeeFunc != nil {
		return c.FeeFunc(ctx)
	}

	return 0, nil
}

func (c *MockLedgerCaller) Symbol(ctx context.Context) (string, error) {
	if c.SymbolFunc != nil {
		return c.SymbolFunc(ctx)
	}

	return "ICP", nil
}

func (c *MockLedgerCaller) Approve(ctx context.Context, args client.ApproveArgs) error {
	if c.ApproveFunc != nil {
		return c.ApproveFunc(ctx, args)
	}

	return nil
}

func (c *MockLedgerCaller) Close() {}
