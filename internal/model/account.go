package model

type GetMyAccountRequest struct{}

type GetMyAccountResponse struct {
	Principal string `json:"principal"`
	Balance   int64  `json:"balance"`
	Symbol    string `json:"symbol"`

	Created      []Raffle `json:"created"`
	Participated []Raffle `json:"participated"`

	TotalWinnings    int64 `json:"total_winnings"`
	TotalCreatedPool int64 `json:"total_created_pool"`
}

type GetDanglingAllowancesRequest struct{}

type DanglingAllowance struct {
	SagaID   string `json:"saga_id"`
	Kind     string `json:"kind"`
	RaffleID int64  `json:"raffle_id"`
	Amount   int64  `json:"amount"`
}

type GetDanglingAllowancesResponse struct {
	Allowances []DanglingAllowance `json:"allowances"`
}
