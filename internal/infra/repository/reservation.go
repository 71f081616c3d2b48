package repository

import (
	"context"

	"cusco-tours/internal/domain/reservation"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
)

// ReservationRepository takes the executor per call so checkout can create a
// batch of reservations inside one transaction.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (id, user_id, tour_id, date, people, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := db.Exec(ctx, query,
		res.ID(),
		res.UserID(),
		res.TourID(),
		res.Date(),
		res.People(),
		pgconv.NumericFromDecimal(res.Total()),
		res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, infra.ClassifyPgErr(err))
	}

	return nil
}
