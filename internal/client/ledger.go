package client

import (
	"context"

	"github.com/ethereum/go-ethereum/rpc"
)

// ApproveArgs mirrors the icrc2_approve argument record. Optional fields are
// omitted when nil and left to the ledger's defaults.
type ApproveArgs struct {
	Spender           string `json:"spender"`
	Amount            int64  `json:"amount"`
	Fee               *int64 `json:"fee,omitempty"`
	Memo              []byte `json:"memo,omitempty"`
	FromSubaccount    []byte `json:"from_subaccount,omitempty"`
	CreatedAtTime     *int64 `json:"created_at_time,omitempty"`
	ExpectedAllowance *int64 `json:"expected_allowance,omitempty"`
	ExpiresAt         *int64 `json:"expires_at,omitempty"`
}

type LedgerCaller interface {
	BalanceOf(ctx context.Context, owner string) (int64, error)
	Fee(ctx context.Context) (int64, error)
	Symbol(ctx context.Context) (string, error)
	Approve(ctx context.Context, args ApproveArgs) error
	Close()
}

type ledgerCaller struct {
	client *rpc.Client
}

func NewLedgerCaller(client *rpc.Client) *ledgerCaller {
	return &ledgerCaller{client: client}
}

func (c *ledgerCaller) BalanceOf(ctx context.Context, owner string) (int64, error) {
	var result int64
	err := c.client.CallContext(ctx, &result, "icrc1_balance_of", owner)
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (c *ledgerCaller) Fee(ctx context.Context) (int64, error) {
	var result int64
	err := c.client.CallContext(ctx, &result, "icrc1_fee")
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (c *ledgerCaller) Symbol(ctx context.Context) (string, error) {
	var result string
	err := c.client.CallContext(ctx, &result, "icrc1_symbol")
	if err != nil {
		return "", err
	}

	return result, nil
}

func (c *ledgerCaller) Approve(ctx context.Context, args ApproveArgs) error {
	return c.client.CallContext(ctx, nil, "icrc2_approve", args)
}

func (c *ledgerCaller) Close() {
	c.client.Close()
}
