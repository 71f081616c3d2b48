package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes and validates a user-entered code. Lookup is
// case-insensitive, so the canonical form is uppercase.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewPercentageDiscount(percent decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercentage, value: percent}, nil
}

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, value: amount}, nil
}

func (d Discount) Type() DiscountType {
	return d.kind
}

func (d Discount) Value() decimal.Decimal {
	return d.value
}

func (d Discount) IsPercentage() bool {
	return d.kind == DiscountPercentage
}

// AmountFor returns the discount for the given discountable base. The result
// never exceeds the base: a fixed amount larger than the base and a
// percentage of 100 both discount the whole base, nothing more.
func (d Discount) AmountFor(base decimal.Decimal) decimal.Decimal {
	if base.IsNegative() || base.IsZero() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch d.kind {
	case DiscountPercentage:
		amount = base.Mul(d.value).Div(decimal.NewFromInt(100))
	case DiscountFixed:
		amount = d.value
	default:
		return decimal.Zero
	}

	if amount.GreaterThan(base) {
		return base
	}
	return amount
}
