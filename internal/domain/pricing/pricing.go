// Package pricing holds the pure amount arithmetic of the purchase protocol.
// Everything here is deterministic and does no I/O.
package pricing

import "github.com/draffle-lab/client/pkg/errorx"

// EntryCost returns the display-unit cost of quantity entries.
func EntryCost(entryPrice, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, errorx.New(errorx.InvalidQuantity, "Number of entries must be at least 1")
	}

	return entryPrice * quantity, nil
}

// RequiredAllowance converts a display amount into the ledger's base unit and
// adds one transfer fee. This is the exact amount that must be approved as
// allowance for the raffle service.
func RequiredAllowance(displayAmount, scalingFactor, fee int64) int64 {
	return displayAmount*scalingFactor + fee
}

// HasSufficientBalance reports whether balance covers the allowance plus the
// fee the approval call itself burns. Checked pre-flight so a doomed attempt
// never pays the approval fee.
func HasSufficientBalance(balance, requiredAllowance, fee int64) bool {
	return balance >= requiredAllowance+fee
}
