package migration

import (
	"context"

	"github.com/draffle-lab/client/internal/entity"
	"github.com/draffle-lab/client/pkg/xcontext"
)

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.PurchaseSaga{},
	)
}
