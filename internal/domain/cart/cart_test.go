//go:build unit

package cart_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cusco-tours/internal/domain/cart"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newItem(tourID int64, date string, qty int, price int64) cart.LineItem {
	return cart.LineItem{
		TourID:    tourID,
		Name:      "Tour",
		Date:      date,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(price),
	}
}

func TestAdd(t *testing.T) {
	t.Run("appends a new line with the add time", func(t *testing.T) {
		c := cart.New()

		err := c.Add(newItem(1, "2026-04-01", 2, 100), testNow)
		require.NoError(t, err)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, testNow, items[0].AddedAt)
	})

	t.Run("merges quantities for the same tour and date", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 3, 100), testNow.Add(time.Hour)))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		// The merged line keeps its original add time.
		assert.Equal(t, testNow, items[0].AddedAt)
	})

	t.Run("keeps separate lines for the same tour on different dates", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.Add(newItem(1, "2026-04-01", 1, 100), testNow))
		require.NoError(t, c.Add(newItem(1, "2026-04-02", 1, 100), testNow))

		assert.Equal(t, 2, c.Len())
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		c := cart.New()

		err := c.Add(newItem(1, "2026-04-01", 0, 100), testNow)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		err = c.Add(newItem(1, "2026-04-01", -3, 100), testNow)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		assert.True(t, c.IsEmpty())
	})

	t.Run("rejects a malformed travel date", func(t *testing.T) {
		c := cart.New()

		err := c.Add(newItem(1, "01/04/2026", 1, 100), testNow)
		assert.ErrorIs(t, err, cart.ErrInvalidTravelDate)
	})

	t.Run("defaults an empty date to the current day", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.Add(newItem(1, "", 1, 100), testNow))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "2026-03-15", items[0].Date)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes only the matching line", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 1, 100), testNow))
		require.NoError(t, c.Add(newItem(2, "2026-04-01", 1, 150), testNow))

		c.Remove(1, "2026-04-01")

		require.Equal(t, 1, c.Len())
		assert.True(t, c.ContainsOn(2, "2026-04-01"))
	})

	t.Run("is a no-op for an absent line", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 1, 100), testNow))

		c.Remove(99, "2026-04-01")
		c.Remove(1, "2026-05-01")

		assert.Equal(t, 1, c.Len())
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))

		c.UpdateQuantity(1, "2026-04-01", 7)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 7, items[0].Quantity)
	})

	t.Run("a non-positive quantity removes the line", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))

		c.UpdateQuantity(1, "2026-04-01", 0)
		assert.True(t, c.IsEmpty())

		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))
		c.UpdateQuantity(1, "2026-04-01", -1)
		assert.True(t, c.IsEmpty())
	})
}

func TestSubtotal(t *testing.T) {
	t.Run("sums price times quantity over all lines", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))
		require.NoError(t, c.Add(newItem(2, "2026-04-02", 1, 150), testNow))

		assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(350)))
	})

	t.Run("is insensitive to insertion order", func(t *testing.T) {
		a := cart.New()
		require.NoError(t, a.Add(newItem(1, "2026-04-01", 2, 100), testNow))
		require.NoError(t, a.Add(newItem(2, "2026-04-02", 3, 150), testNow))

		b := cart.New()
		require.NoError(t, b.Add(newItem(2, "2026-04-02", 3, 150), testNow))
		require.NoError(t, b.Add(newItem(1, "2026-04-01", 2, 100), testNow))

		assert.True(t, a.Subtotal().Equal(b.Subtotal()))
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		c := cart.New()
		assert.True(t, c.Subtotal().IsZero())
		assert.Equal(t, 0, c.Units())
	})
}

func TestItems(t *testing.T) {
	t.Run("returns a copy the caller cannot mutate", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))

		items := c.Items()
		items[0].Quantity = 99

		fresh := c.Items()
		assert.Equal(t, 2, fresh[0].Quantity)
	})
}

func TestReconstruct(t *testing.T) {
	t.Run("round-trips the stored lines", func(t *testing.T) {
		original := []cart.LineItem{
			{TourID: 1, Name: "Machu Picchu", Date: "2026-04-01", Quantity: 2, UnitPrice: decimal.NewFromInt(100), AddedAt: testNow},
			{TourID: 2, Name: "Valle Sagrado", Date: "2026-04-02", Quantity: 1, UnitPrice: decimal.NewFromInt(80), AddedAt: testNow},
		}

		c := cart.Reconstruct(original)

		if diff := cmp.Diff(original, c.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, c.Units())
	})

	t.Run("nil slice yields an empty cart", func(t *testing.T) {
		c := cart.Reconstruct(nil)
		assert.True(t, c.IsEmpty())
		assert.NotNil(t, c.Items())
	})
}

func TestClear(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))
	require.NoError(t, c.Add(newItem(2, "2026-04-02", 1, 80), testNow))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Units())
}

func TestContains(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(newItem(1, "2026-04-01", 2, 100), testNow))

	assert.True(t, c.Contains(1))
	assert.False(t, c.Contains(2))
	assert.True(t, c.ContainsOn(1, "2026-04-01"))
	assert.False(t, c.ContainsOn(1, "2026-04-02"))
}
