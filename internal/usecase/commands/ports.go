package commands

import (
	"context"

	"github.com/google/uuid"

	"cusco-tours/internal/domain/reservation"
	"cusco-tours/internal/domain/tour"
	"cusco-tours/internal/domain/user"
	"cusco-tours/internal/infra"
)

type TourRepository interface {
	Create(ctx context.Context, t *tour.Tour) (int64, error)
	Update(ctx context.Context, t *tour.Tour) error
	FindByID(ctx context.Context, id int64) (*tour.Tour, error)
	Deactivate(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error
}
