// Package rafflestate derives time-dependent view state from raw raffle
// records. Nothing here is cached: every value is recomputed from a record
// snapshot and the caller's clock.
package rafflestate

import (
	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/pkg/enum"
)

type Status string

var (
	StatusActive    = enum.New(Status("active"), "Active")
	StatusExpired   = enum.New(Status("expired"), "Expired")
	StatusCompleted = enum.New(Status("completed"), "Completed")
)

// Classify returns the status of a raffle at the given instant (nanoseconds
// since epoch). The service-reported completion flag always wins over the
// clock: a time-expired raffle the service has not finalized yet reads
// Expired, never Completed.
func Classify(record entity.RaffleRecord, now int64) Status {
	if record.RaffleCompleted {
		return StatusCompleted
	}

	if record.EndTime > now {
		return StatusActive
	}

	return StatusExpired
}

// CanBuyEntries reports whether the service would still accept a purchase:
// not completed and not past its end time.
func CanBuyEntries(record entity.RaffleRecord, now int64) bool {
	return !record.RaffleCompleted && record.EndTime > now
}

// TotalWinnings sums the rewards of completed raffles won by principal.
func TotalWinnings(raffles []entity.RaffleRecord, principal string) int64 {
	var total int64
	for _, r := range raffles {
		if r.RaffleCompleted && r.Winner != nil && *r.Winner == principal && r.Reward != nil {
			total += *r.Reward
		}
	}

	return total
}

// TotalCreatedPool sums the prize pools of the given raffles.
func TotalCreatedPool(raffles []entity.RaffleRecord) int64 {
	var total int64
	for _, r := range raffles {
		total += r.PrizePool
	}

	return total
}
