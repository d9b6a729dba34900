package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/draffle-lab/client/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testcases := []struct {
		name     string
		err      error
		fallback errorx.Code
		expected errorx.Code
		message  string
	}{
		{
			name:     "nil stays nil",
			err:      nil,
			fallback: errorx.OperationFailed,
		},
		{
			name:     "anonymous caller maps to unauthenticated",
			err:      errors.New("Anonymous caller is not allowed to buy entries"),
			fallback: errorx.OperationFailed,
			expected: errorx.Unauthenticated,
			message:  "Please connect your wallet first",
		},
		{
			name:     "transfer failure keeps the phase's code",
			err:      errors.New("ledger: transfer failed for account"),
			fallback: errorx.AllowanceFailed,
			expected: errorx.AllowanceFailed,
			message:  "Token transfer failed. Please check your balance.",
		},
		{
			name:     "transfer failure after approval",
			err:      errors.New("backend: transfer failed"),
			fallback: errorx.OperationFailed,
			expected: errorx.OperationFailed,
		},
		{
			name:     "unknown raffle id",
			err:      errors.New("raffle not found"),
			fallback: errorx.BadResponse,
			expected: errorx.NotFound,
		},
		{
			name:     "unrecognized text passes through",
			err:      errors.New("candid decode error"),
			fallback: errorx.OperationFailed,
			expected: errorx.OperationFailed,
			message:  "candid decode error",
		},
		{
			name:     "already classified errors pass through unchanged",
			err:      fmt.Errorf("wrapped: %w", errorx.New(errorx.InvalidQuantity, "bad quantity")),
			fallback: errorx.OperationFailed,
			expected: errorx.InvalidQuantity,
			message:  "bad quantity",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := Classify(tc.err, tc.fallback)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errorx.Error{Code: tc.expected})
			if tc.message != "" {
				require.Equal(t, tc.message, err.Error())
			}
		})
	}
}
