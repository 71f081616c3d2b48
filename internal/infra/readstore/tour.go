package readstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
	"cusco-tours/internal/usecase/queries"
)

type TourReadStore struct {
	db infra.DBTX
}

func NewTourReadStore(db infra.DBTX) *TourReadStore {
	return &TourReadStore{db: db}
}

func (s *TourReadStore) ListActive(ctx context.Context, search string) ([]queries.TourView, error) {
	query := `
		SELECT id, slug, title, description, price, duration, image, active, created_at, updated_at
		FROM tours
		WHERE active = true`
	args := []any{}

	if search != "" {
		query += ` AND (title ILIKE $1 OR description ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tours", err)
	}
	defer rows.Close()

	views := make([]queries.TourView, 0)
	for rows.Next() {
		view, err := scanTourView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tour rows", err)
	}

	return views, nil
}

func (s *TourReadStore) FindBySlug(ctx context.Context, slug string) (*queries.TourView, error) {
	const query = `
		SELECT id, slug, title, description, price, duration, image, active, created_at, updated_at
		FROM tours
		WHERE slug = $1 AND active = true`

	return scanTourView(s.db.QueryRow(ctx, query, slug))
}

func scanTourView(row pgx.Row) (*queries.TourView, error) {
	var (
		view               queries.TourView
		price              pgtype.Numeric
		createdAt, updated pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.Slug, &view.Title, &view.Description,
		&price, &view.Duration, &view.Image, &view.Active,
		&createdAt, &updated,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour", err, infra.ClassifyPgErr(err))
	}

	view.Price, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid tour price", err)
	}
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updated.Time

	return &view, nil
}
