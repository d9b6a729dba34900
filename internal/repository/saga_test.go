package repository

import (
	"testing"

	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_sagaRepository_StateTransitions(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewSagaRepository()

	saga := &entity.PurchaseSaga{
		Base:      entity.Base{ID: "saga-1"},
		Kind:      entity.SagaKindCreateRaffle,
		Principal: testutil.Principal1,
		Amount:    1_000_000_001,
		State:     entity.SagaStateStarted,
		Params:    entity.Map{"title": "My raffle"},
	}
	require.NoError(t, repo.Create(ctx, saga))

	require.NoError(t, repo.UpdateState(ctx, "saga-1", entity.SagaStateAllowanceGranted))

	dangling, err := repo.GetDangling(ctx, testutil.Principal1)
	require.NoError(t, err)
	require.Len(t, dangling, 1)
	require.Equal(t, "saga-1", dangling[0].ID)

	// Another principal sees nothing.
	dangling, err = repo.GetDangling(ctx, testutil.Principal2)
	require.NoError(t, err)
	require.Empty(t, dangling)

	require.NoError(t, repo.SetReason(ctx, "saga-1", "backend rejected"))
	got, err := repo.GetByID(ctx, "saga-1")
	require.NoError(t, err)
	require.Equal(t, entity.SagaStateAllowanceGranted, got.State)
	require.Equal(t, "backend rejected", got.Reason)
	require.Equal(t, entity.Map{"title": "My raffle"}, got.Params)

	require.NoError(t, repo.UpdateState(ctx, "saga-1", entity.SagaStateOperationApplied))
	dangling, err = repo.GetDangling(ctx, testutil.Principal1)
	require.NoError(t, err)
	require.Empty(t, dangling)
}

func Test_sagaRepository_MarkFailed(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewSagaRepository()

	require.NoError(t, repo.Create(ctx, &entity.PurchaseSaga{
		Base:      entity.Base{ID: "saga-2"},
		Kind:      entity.SagaKindBuyEntries,
		Principal: testutil.Principal2,
		RaffleID:  7,
		Amount:    600_000_001,
		State:     entity.SagaStateStarted,
	}))

	require.NoError(t, repo.MarkFailed(ctx, "saga-2", "ledger rejected approval"))

	got, err := repo.GetByID(ctx, "saga-2")
	require.NoError(t, err)
	require.Equal(t, entity.SagaStateFailed, got.State)
	require.Equal(t, "ledger rejected approval", got.Reason)

	dangling, err := repo.GetDangling(ctx, testutil.Principal2)
	require.NoError(t, err)
	require.Empty(t, dangling)
}
