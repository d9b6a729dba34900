package domain

import (
	"github.com/draffle-lab/client/internal/domain/rafflestate"
	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/internal/model"
	"github.com/draffle-lab/client/pkg/enum"
)

func convertRaffle(record entity.RaffleRecord, now int64) model.Raffle {
	raffle := model.Raffle{
		ID:                   record.ID,
		Title:                record.Title,
		Creator:              record.Creator,
		EntryPrice:           record.EntryPrice,
		PrizePool:            record.PrizePool,
		NoOfEntries:          record.NoOfEntries,
		NumberOfParticipants: record.NumberOfParticipants,
		StartTime:            record.StartTime,
		EndTime:              record.EndTime,
		RaffleCompleted:      record.RaffleCompleted,
		WinningEntry:         record.WinningEntry,
		Status:               enum.ToString(rafflestate.Classify(record, now)),
	}

	if record.Winner != nil {
		raffle.Winner = *record.Winner
	}

	if record.Reward != nil {
		raffle.Reward = *record.Reward
	}

	if !record.RaffleCompleted {
		raffle.TimeLeft = rafflestate.FormatRemaining(record.EndTime - now)
	}

	return raffle
}

func convertRaffles(records []entity.RaffleRecord, now int64) []model.Raffle {
	raffles := []model.Raffle{}
	for _, record := range records {
		raffles = append(raffles, convertRaffle(record, now))
	}

	return raffles
}
