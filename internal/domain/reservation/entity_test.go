//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cusco-tours/internal/domain/cart"
	"cusco-tours/internal/domain/reservation"
)

func TestNewReservation(t *testing.T) {
	userID := uuid.New()

	t.Run("starts pending", func(t *testing.T) {
		res, err := reservation.NewReservation(userID, 1, "2026-04-01", 2, decimal.NewFromInt(200))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.NotEqual(t, uuid.Nil, res.ID())
	})

	t.Run("rejects a party of zero", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, 1, "2026-04-01", 0, decimal.Zero)
		assert.ErrorIs(t, err, reservation.ErrInvalidPeople)
	})

	t.Run("rejects a negative total", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, 1, "2026-04-01", 1, decimal.NewFromInt(-10))
		assert.ErrorIs(t, err, reservation.ErrNegativeTotal)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, 1, "April 1st", 1, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, cart.ErrInvalidTravelDate)
	})
}

func TestFromLineItem(t *testing.T) {
	userID := uuid.New()

	item := cart.LineItem{
		TourID:    7,
		Name:      "Valle Sagrado",
		Date:      "2026-04-02",
		Quantity:  3,
		UnitPrice: decimal.NewFromInt(80),
		AddedAt:   time.Now(),
	}

	res, err := reservation.FromLineItem(userID, item)
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.TourID())
	assert.Equal(t, 3, res.People())
	assert.True(t, res.Total().Equal(decimal.NewFromInt(240)))
	assert.Equal(t, "2026-04-02", res.Date())
}

func TestCancel(t *testing.T) {
	userID := uuid.New()

	t.Run("cancels a pending reservation", func(t *testing.T) {
		res, err := reservation.NewReservation(userID, 1, "2026-04-01", 1, decimal.NewFromInt(100))
		require.NoError(t, err)

		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCanceled, res.Status())
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		res, err := reservation.NewReservation(userID, 1, "2026-04-01", 1, decimal.NewFromInt(100))
		require.NoError(t, err)

		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), reservation.ErrInvalidStatus)
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "canceled"} {
		status, err := reservation.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := reservation.NewStatus("done")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
