package entity

import "github.com/draffle-lab/client/pkg/enum"

type SagaKind string

var (
	SagaKindCreateRaffle = enum.New(SagaKind("create_raffle"), "CreateRaffle")
	SagaKindBuyEntries   = enum.New(SagaKind("buy_entries"), "BuyEntries")
)

type SagaState string

var (
	SagaStateStarted          = enum.New(SagaState("started"), "Started")
	SagaStateAllowanceGranted = enum.New(SagaState("allowance_granted"), "AllowanceGranted")
	SagaStateOperationApplied = enum.New(SagaState("operation_applied"), "OperationApplied")
	SagaStateFailed           = enum.New(SagaState("failed"), "Failed")
)

// PurchaseSaga journals one approve-then-call attempt. The two remote calls
// have no cross-service atomicity, so each step boundary is recorded: a row
// left in allowance_granted names an allowance the ledger still holds for the
// raffle service.
type PurchaseSaga struct {
	Base

	Kind      SagaKind
	Principal string
	RaffleID  int64

	// Amount approved as allowance, in the ledger's base unit.
	Amount int64

	State  SagaState
	Reason string
	Params Map
}
