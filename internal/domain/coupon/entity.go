package coupon

import "github.com/shopspring/decimal"

type Coupon struct {
	code        Code
	discount    Discount
	description string
}

func NewCoupon(code string, discount Discount, description string) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		code:        couponCode,
		discount:    discount,
		description: description,
	}, nil
}

func (c *Coupon) Code() Code          { return c.code }
func (c *Coupon) Discount() Discount  { return c.discount }
func (c *Coupon) Description() string { return c.description }

func (c *Coupon) AmountFor(base decimal.Decimal) decimal.Decimal {
	return c.discount.AmountFor(base)
}
