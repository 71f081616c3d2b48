package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TourID    int64
	TourTitle string
	Date      string
	People    int
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationQueries interface {
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
	GetReservation(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	// Owners only; existence is not leaked to other users.
	if view.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return view, nil
}
