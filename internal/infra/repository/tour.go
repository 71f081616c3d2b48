package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/domain/tour"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
)

type TourRepository struct {
	db infra.DBTX
}

func NewTourRepository(db infra.DBTX) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(ctx context.Context, t *tour.Tour) (int64, error) {
	const query = `
		INSERT INTO tours (slug, title, description, price, duration, image, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		t.Slug().String(),
		t.Title(),
		t.Description(),
		pgconv.NumericFromDecimal(t.Price()),
		t.Duration(),
		t.Image(),
		t.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create tour", err, infra.ClassifyPgErr(err))
	}

	return id, nil
}

func (r *TourRepository) Update(ctx context.Context, t *tour.Tour) error {
	const query = `
		UPDATE tours
		SET title = $2, description = $3, price = $4, duration = $5, image = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID(),
		t.Title(),
		t.Description(),
		pgconv.NumericFromDecimal(t.Price()),
		t.Duration(),
		t.Image(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tour", err, infra.ClassifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *TourRepository) FindByID(ctx context.Context, id int64) (*tour.Tour, error) {
	const query = `
		SELECT id, slug, title, description, price, duration, image, active, created_at, updated_at
		FROM tours
		WHERE id = $1`

	return scanTour(r.db.QueryRow(ctx, query, id))
}

func (r *TourRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE tours SET active = false, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate tour", err, infra.ClassifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTour(row rowScanner) (*tour.Tour, error) {
	var (
		id                 int64
		slug, title, desc  string
		price              pgtype.Numeric
		duration, image    string
		active             bool
		createdAt, updated pgtype.Timestamptz
	)

	err := row.Scan(&id, &slug, &title, &desc, &price, &duration, &image, &active, &createdAt, &updated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour", err, infra.ClassifyPgErr(err))
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid tour price", err)
	}

	return tour.ReconstructTour(
		id,
		tour.Slug(slug),
		title,
		desc,
		priceDec,
		duration,
		image,
		active,
		createdAt.Time,
		updated.Time,
	), nil
}
