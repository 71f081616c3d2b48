package shared

import (
	"context"

	"cusco-tours/internal/infra"
)

// UnitOfWork runs fn inside one database transaction; fn's error rolls the
// transaction back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error
}
