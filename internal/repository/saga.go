package repository

import (
	"context"

	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/pkg/xcontext"
)

type SagaRepository interface {
	Create(context.Context, *entity.PurchaseSaga) error
	GetByID(context.Context, string) (*entity.PurchaseSaga, error)
	GetDangling(context.Context, string) ([]entity.PurchaseSaga, error)
	UpdateState(ctx context.Context, id string, state entity.SagaState) error
	SetReason(ctx context.Context, id string, reason string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type sagaRepository struct{}

func NewSagaRepository() *sagaRepository {
	return &sagaRepository{}
}

func (r *sagaRepository) Create(ctx context.Context, saga *entity.PurchaseSaga) error {
	return xcontext.DB(ctx).Create(saga).Error
}

func (r *sagaRepository) GetByID(ctx context.Context, id string) (*entity.PurchaseSaga, error) {
	var result entity.PurchaseSaga
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// GetDangling returns attempts whose allowance was granted but whose
// privileged call never applied, meaning the ledger may still hold an unspent
// allowance for the raffle service on this principal's behalf.
func (r *sagaRepository) GetDangling(ctx context.Context, principal string) ([]entity.PurchaseSaga, error) {
	var result []entity.PurchaseSaga
	err := xcontext.DB(ctx).
		Find(&result, "principal=? AND state=?", principal, entity.SagaStateAllowanceGranted).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sagaRepository) UpdateState(ctx context.Context, id string, state entity.SagaState) error {
	return xcontext.DB(ctx).
		Model(&entity.PurchaseSaga{}).
		Where("id = ?", id).
		Update("state", state).Error
}

// SetReason records a failure reason without leaving the current state, used
// when the privileged call fails after the allowance was already granted: the
// row keeps naming the outstanding allowance.
func (r *sagaRepository) SetReason(ctx context.Context, id string, reason string) error {
	return xcontext.DB(ctx).
		Model(&entity.PurchaseSaga{}).
		Where("id = ?", id).
		Update("reason", reason).Error
}

func (r *sagaRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return xcontext.DB(ctx).
		Model(&entity.PurchaseSaga{}).
		Where("id = ?", id).
		Updates(map[string]any{"state": entity.SagaStateFailed, "reason": reason}).Error
}
