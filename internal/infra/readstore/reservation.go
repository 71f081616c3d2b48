package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
	"cusco-tours/internal/usecase/queries"
)

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationSelect = `
	SELECT r.id, r.user_id, r.tour_id, t.title, r.date::text, r.people, r.total, r.status, r.created_at
	FROM reservations r
	JOIN tours t ON t.id = r.tour_id`

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	query := reservationSelect + `
	WHERE r.user_id = $1
	ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return views, nil
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationSelect + `
	WHERE r.id = $1`

	return scanReservationView(s.db.QueryRow(ctx, query, id))
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.UserID, &view.TourID, &view.TourTitle,
		&view.Date, &view.People, &total, &view.Status, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err, infra.ClassifyPgErr(err))
	}

	view.Total, err = pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation total", err)
	}
	view.CreatedAt = createdAt.Time

	return &view, nil
}
