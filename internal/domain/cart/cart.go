package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidTravelDate = errors.New("invalid travel date")
)

const DateLayout = "2006-01-02"

// LineItem is one cart entry: a tour on a service date. (TourID, Date) is the
// merge key. UnitPrice is captured at add time and never re-fetched on render.
type LineItem struct {
	TourID    int64           `json:"tourId"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
	Date      string          `json:"date"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	AddedAt   time.Time       `json:"addedAt"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) matches(tourID int64, date string) bool {
	return li.TourID == tourID && li.Date == date
}

// Cart holds the line items for one profile. Mutations only touch memory;
// the owning service mirrors the cart to its store after every change.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Reconstruct rebuilds a cart from its persisted line items.
func Reconstruct(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

// Add merges the item into an existing line with the same (TourID, Date) by
// incrementing its quantity, or appends a new line. An empty Date defaults to
// the current date.
func (c *Cart) Add(item LineItem, now time.Time) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	if item.Date == "" {
		item.Date = now.Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, item.Date); err != nil {
		return ErrInvalidTravelDate
	}

	for i := range c.items {
		if c.items[i].matches(item.TourID, item.Date) {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}

	item.AddedAt = now
	c.items = append(c.items, item)
	return nil
}

// Remove drops the line matching both keys. Absent lines are a no-op, not an
// error.
func (c *Cart) Remove(tourID int64, date string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if !item.matches(tourID, date) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or below removes the line entirely. No upper bound is enforced.
func (c *Cart) UpdateQuantity(tourID int64, date string, quantity int) {
	if quantity <= 0 {
		c.Remove(tourID, date)
		return
	}

	for i := range c.items {
		if c.items[i].matches(tourID, date) {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a defensive copy; callers cannot mutate the cart through it.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Subtotal is the raw merchandise total, before services, discounts and tax.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) Contains(tourID int64) bool {
	for _, item := range c.items {
		if item.TourID == tourID {
			return true
		}
	}
	return false
}

func (c *Cart) ContainsOn(tourID int64, date string) bool {
	for _, item := range c.items {
		if item.matches(tourID, date) {
			return true
		}
	}
	return false
}

// Units is the total quantity across all lines (the cart badge count).
func (c *Cart) Units() int {
	units := 0
	for _, item := range c.items {
		units += item.Quantity
	}
	return units
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}
