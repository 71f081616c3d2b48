package coupon

import (
	"context"
	"errors"
)

// ErrNotFound signals an unresolvable code. Callers treat it as an explicit
// "clear the active coupon", not as a no-op: a previously applied coupon is
// dropped when the user enters an unknown code.
var ErrNotFound = errors.New("coupon not found")

// Resolver validates a code against a catalog. Resolve has no side effects;
// applying or clearing the active coupon is the caller's responsibility.
type Resolver interface {
	Resolve(ctx context.Context, code string) (*Coupon, error)
}
