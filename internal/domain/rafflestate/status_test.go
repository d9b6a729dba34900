package rafflestate

import (
	"testing"

	"github.com/draffle-lab/client/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t0 := int64(1_700_000_000_000_000_000)

	t.Run("completed flag wins over time", func(t *testing.T) {
		winner := "aaaa-bbbb"
		entry := int64(3)
		reward := int64(25)
		record := entity.RaffleRecord{
			EndTime:         t0 + 1000,
			RaffleCompleted: true,
			Winner:          &winner,
			WinningEntry:    &entry,
			Reward:          &reward,
		}

		// Both before and after the end time.
		require.Equal(t, StatusCompleted, Classify(record, t0))
		require.Equal(t, StatusCompleted, Classify(record, t0+2000))
	})

	t.Run("active strictly before end time", func(t *testing.T) {
		record := entity.RaffleRecord{StartTime: t0, EndTime: t0 + 1000}

		require.Equal(t, StatusActive, Classify(record, t0+999))
		require.Equal(t, StatusExpired, Classify(record, t0+1000))
		require.Equal(t, StatusExpired, Classify(record, t0+1001))
	})

	t.Run("time-expired but not finalized reads expired", func(t *testing.T) {
		record := entity.RaffleRecord{EndTime: t0, RaffleCompleted: false}
		require.Equal(t, StatusExpired, Classify(record, t0+1))
	})
}

func TestCanBuyEntries(t *testing.T) {
	t0 := int64(1_700_000_000_000_000_000)

	require.True(t, CanBuyEntries(entity.RaffleRecord{EndTime: t0 + 1}, t0))
	require.False(t, CanBuyEntries(entity.RaffleRecord{EndTime: t0}, t0))
	require.False(t, CanBuyEntries(entity.RaffleRecord{EndTime: t0 + 1, RaffleCompleted: true}, t0))
}

func TestTotals(t *testing.T) {
	me := "me-principal"
	other := "other-principal"
	reward := int64(40)
	otherReward := int64(99)

	raffles := []entity.RaffleRecord{
		{ID: 1, PrizePool: 50, RaffleCompleted: true, Winner: &me, Reward: &reward},
		{ID: 2, PrizePool: 30, RaffleCompleted: true, Winner: &other, Reward: &otherReward},
		{ID: 3, PrizePool: 20, RaffleCompleted: false},
	}

	require.Equal(t, int64(40), TotalWinnings(raffles, me))
	require.Equal(t, int64(0), TotalWinnings(raffles, "nobody"))
	require.Equal(t, int64(100), TotalCreatedPool(raffles))
	require.Equal(t, int64(0), TotalCreatedPool(nil))
}
