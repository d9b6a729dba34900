package testutil

import "github.com/draffle-lab/client/internal/entity"

const (
	Principal1 = "w3gef-eqllq-zz"
	Principal2 = "rrkah-fqaaa-aa"
)

// SampleRaffle returns an active raffle created by Principal1 that ends one
// hour after the given instant.
func SampleRaffle(id int64, now int64) entity.RaffleRecord {
	return entity.RaffleRecord{
		ID:                   id,
		Title:                "Weekly ICP raffle",
		Creator:              Principal1,
		EntryPrice:           2,
		PrizePool:            10,
		NoOfEntries:          5,
		NumberOfParticipants: 3,
		StartTime:            now - int64(3_600_000_000_000),
		EndTime:              now + int64(3_600_000_000_000),
	}
}

// CompletedRaffle returns a finalized raffle won by the given principal.
func CompletedRaffle(id int64, winner string, reward int64) entity.RaffleRecord {
	winningEntry := int64(3)
	return entity.RaffleRecord{
		ID:                   id,
		Title:                "Finished raffle",
		Creator:              Principal1,
		EntryPrice:           1,
		PrizePool:            reward * 2,
		NoOfEntries:          8,
		NumberOfParticipants: 4,
		StartTime:            1,
		EndTime:              2,
		RaffleCompleted:      true,
		Winner:               &winner,
		WinningEntry:         &winningEntry,
		Reward:               &reward,
	}
}
