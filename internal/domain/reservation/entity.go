package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cusco-tours/internal/domain/cart"
)

var (
	ErrInvalidPeople = errors.New("people must be at least 1")
	ErrNegativeTotal = errors.New("total cannot be negative")
	ErrInvalidStatus = errors.New("invalid reservation status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

// Reservation books one tour for a party on a service date. Checkout creates
// one reservation per cart line.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	tourID    int64
	date      string
	people    int
	total     decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(userID uuid.UUID, tourID int64, date string, people int, total decimal.Decimal) (*Reservation, error) {
	if people < 1 {
		return nil, ErrInvalidPeople
	}
	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}
	if _, err := time.Parse(cart.DateLayout, date); err != nil {
		return nil, cart.ErrInvalidTravelDate
	}

	return &Reservation{
		id:     uuid.New(),
		userID: userID,
		tourID: tourID,
		date:   date,
		people: people,
		total:  total,
		status: StatusPending,
	}, nil
}

// FromLineItem books a cart line as-is: the party size is the line quantity
// and the total is the undiscounted line total. Order-level discount and tax
// live in the checkout snapshot, not on individual reservations.
func FromLineItem(userID uuid.UUID, item cart.LineItem) (*Reservation, error) {
	return NewReservation(userID, item.TourID, item.Date, item.Quantity, item.LineTotal())
}

func ReconstructReservation(
	id, userID uuid.UUID,
	tourID int64,
	date string,
	people int,
	total decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		tourID:    tourID,
		date:      date,
		people:    people,
		total:     total,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) Cancel() error {
	if r.status == StatusCanceled {
		return ErrInvalidStatus
	}
	r.status = StatusCanceled
	return nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) TourID() int64         { return r.tourID }
func (r *Reservation) Date() string          { return r.date }
func (r *Reservation) People() int           { return r.people }
func (r *Reservation) Total() decimal.Decimal { return r.total }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
