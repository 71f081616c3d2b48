package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
	"cusco-tours/internal/usecase/queries"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, phone, last_login, is_active, created_at
		FROM users
		WHERE id = $1`

	var (
		view      queries.UserView
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Phone,
		&lastLogin, &view.IsActive, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err, infra.ClassifyPgErr(err))
	}

	view.LastLogin = pgconv.TimePtrFromTimestamptz(lastLogin)
	view.CreatedAt = createdAt.Time

	return &view, nil
}
