package pricing

import (
	"github.com/shopspring/decimal"

	"cusco-tours/internal/domain/cart"
	"cusco-tours/internal/domain/coupon"
)

// TaxRate is the IGV (Peruvian VAT) applied to the post-discount base.
var TaxRate = decimal.New(18, -2)

// Snapshot is the derived set of monetary totals for one cart state. It is
// recomputed on every mutation and never persisted. All values carry two
// fractional digits, and Total == Subtotal + ServicesTotal - Discount + Taxes
// holds exactly over the rounded components.
type Snapshot struct {
	Subtotal      decimal.Decimal
	ServicesTotal decimal.Decimal
	Discount      decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
}

// Compute derives the totals from the current cart lines, the selected
// add-on services and the active coupon (nil when none). Pure arithmetic
// over already-validated data: it cannot fail.
func Compute(items []cart.LineItem, services []Service, coup *coupon.Coupon) Snapshot {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	subtotal = subtotal.Round(2)

	servicesTotal := decimal.Zero
	for _, svc := range services {
		if svc.Selected {
			servicesTotal = servicesTotal.Add(svc.Price)
		}
	}
	servicesTotal = servicesTotal.Round(2)

	base := subtotal.Add(servicesTotal)

	discount := decimal.Zero
	if coup != nil {
		discount = coup.AmountFor(base).Round(2)
	}

	taxes := base.Sub(discount).Mul(TaxRate).Round(2)

	return Snapshot{
		Subtotal:      subtotal,
		ServicesTotal: servicesTotal,
		Discount:      discount,
		Taxes:         taxes,
		Total:         base.Sub(discount).Add(taxes),
	}
}
