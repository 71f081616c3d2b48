package coupon

import (
	"context"

	"github.com/shopspring/decimal"
)

// StaticCatalog resolves codes against the embedded promotion set. Exact
// match only: no prefixes, no fuzzy matching.
type StaticCatalog struct {
	coupons map[Code]*Coupon
}

func NewStaticCatalog() *StaticCatalog {
	catalog := &StaticCatalog{coupons: make(map[Code]*Coupon)}

	mustAdd := func(code string, discount Discount, description string) {
		c, err := NewCoupon(code, discount, description)
		if err != nil {
			panic("static catalog: " + err.Error())
		}
		catalog.coupons[c.Code()] = c
	}

	welcome, _ := NewPercentageDiscount(decimal.NewFromInt(10))
	summer, _ := NewPercentageDiscount(decimal.NewFromInt(25))
	santiago, _ := NewFixedDiscount(decimal.NewFromInt(50))

	mustAdd("BIENVENIDO10", welcome, "10% de descuento")
	mustAdd("VERANO25", summer, "25% de descuento")
	mustAdd("SANTIAGO50", santiago, "S/ 50 de descuento")

	return catalog
}

func (s *StaticCatalog) Resolve(_ context.Context, code string) (*Coupon, error) {
	normalized, err := NewCode(code)
	if err != nil {
		return nil, ErrNotFound
	}

	c, ok := s.coupons[normalized]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}
