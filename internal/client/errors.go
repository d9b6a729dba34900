package client

import (
	"errors"
	"strings"

	"github.com/draffle-lab/client/pkg/errorx"
)

// Classify maps a collaborator failure onto the error taxonomy. Both remote
// services report free-text reasons, so this is the only place raw text is
// inspected; everything above the callers sees errorx values. An already
// classified error passes through, an unrecognized reason keeps its text
// under the fallback code.
func Classify(err error, fallback errorx.Code) error {
	if err == nil {
		return nil
	}

	var known errorx.Error
	if errors.As(err, &known) {
		return known
	}

	reason := strings.ToLower(err.Error())
	switch {
	case strings.Contains(reason, "anonymous caller"):
		return errorx.New(errorx.Unauthenticated, "Please connect your wallet first")
	case strings.Contains(reason, "transfer failed"):
		return errorx.New(fallback, "Token transfer failed. Please check your balance.")
	case strings.Contains(reason, "not found"):
		return errorx.New(errorx.NotFound, "Not found raffle")
	case strings.Contains(reason, "insufficient"):
		return errorx.New(errorx.InsufficientBalance, "Insufficient balance")
	default:
		return errorx.New(fallback, "%s", err.Error())
	}
}
