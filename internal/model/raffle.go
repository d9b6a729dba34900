package model

type Raffle struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Creator              string `json:"creator"`
	EntryPrice           int64  `json:"entry_price"`
	PrizePool            int64  `json:"prize_pool"`
	NoOfEntries          int64  `json:"no_of_entries"`
	NumberOfParticipants int64  `json:"number_of_participants"`
	StartTime            int64  `json:"start_time"`
	EndTime              int64  `json:"end_time"`
	RaffleCompleted      bool   `json:"raffle_completed"`
	Winner               string `json:"winner,omitempty"`
	WinningEntry         *int64 `json:"winning_entry,omitempty"`
	Reward               int64  `json:"reward,omitempty"`

	Status   string `json:"status"`
	TimeLeft string `json:"time_left"`
}

type GetAllRafflesRequest struct{}

type GetAllRafflesResponse struct {
	Raffles []Raffle `json:"raffles"`
}

type GetRaffleDetailRequest struct {
	RaffleID int64 `json:"raffle_id"`
}

type GetRaffleDetailResponse struct {
	Raffle      Raffle  `json:"raffle"`
	UserEntries []int64 `json:"user_entries"`
	CanBuy      bool    `json:"can_buy"`
}

type CreateRaffleRequest struct {
	Title        string `json:"title"`
	EntryPrice   int64  `json:"entry_price"`
	InitialPrize int64  `json:"initial_prize"`

	// Duration in seconds.
	Duration int64 `json:"duration"`
}

type CreateRaffleResponse struct {
	Raffle Raffle `json:"raffle"`
}

type BuyEntriesRequest struct {
	RaffleID int64 `json:"raffle_id"`
	Quantity int64 `json:"quantity"`
}

type BuyEntriesResponse struct {
	Raffle      Raffle  `json:"raffle"`
	UserEntries []int64 `json:"user_entries"`
}
