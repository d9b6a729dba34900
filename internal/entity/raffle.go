package entity

// RaffleRecord is an immutable snapshot owned by the raffle service. It is
// fetched on demand and never persisted or mutated by this client; mutation
// happens only through the service's own operations, after which the record
// is re-fetched.
type RaffleRecord struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Creator              string `json:"creator"`
	EntryPrice           int64  `json:"entryPrice"`
	PrizePool            int64  `json:"prizePool"`
	NoOfEntries          int64  `json:"noOfEntries"`
	NumberOfParticipants int64  `json:"numberOfParticipants"`

	// Nanoseconds since epoch.
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`

	RaffleCompleted bool `json:"raffleCompleted"`

	// Present only once RaffleCompleted is true.
	Winner       *string `json:"winner,omitempty"`
	WinningEntry *int64  `json:"winningEntry,omitempty"`
	Reward       *int64  `json:"reward,omitempty"`
}
