package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cusco-tours/internal/domain/cart"
	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/domain/pricing"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/usecase/shared"
)

// CartView is the full cart page payload: the persisted lines, the session
// services/coupon, and the derived totals. Callers re-derive it after every
// mutation and never cache it.
type CartView struct {
	Items    []cart.LineItem
	Units    int
	Services []pricing.Service
	Coupon   *CouponView
	Pricing  pricing.Snapshot
}

type CouponView struct {
	Code        string
	Type        string
	Value       decimal.Decimal
	Description string
}

type CartQueries interface {
	GetCart(ctx context.Context, profileID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store    kvstore.Store
	sessions *shared.Sessions
	resolver coupon.Resolver
}

func NewCartQueries(store kvstore.Store, sessions *shared.Sessions, resolver coupon.Resolver) CartQueries {
	return &cartQueriesImpl{
		store:    store,
		sessions: sessions,
		resolver: resolver,
	}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, profileID uuid.UUID) (*CartView, error) {
	var items []cart.LineItem
	if _, err := q.store.Get(ctx, profileID, kvstore.SlotCart, &items); err != nil {
		return nil, err
	}

	session := q.sessions.Get(profileID)
	services := pricing.SelectServices(pricing.ServiceCatalog(), session.ServiceIDs)

	// A session coupon that no longer resolves is dropped silently; the
	// totals simply lose the discount.
	var activeCoupon *coupon.Coupon
	if session.CouponCode != "" {
		if c, err := q.resolver.Resolve(ctx, session.CouponCode); err == nil {
			activeCoupon = c
		}
	}

	c := cart.Reconstruct(items)

	view := &CartView{
		Items:    c.Items(),
		Units:    c.Units(),
		Services: services,
		Pricing:  pricing.Compute(c.Items(), services, activeCoupon),
	}
	if activeCoupon != nil {
		view.Coupon = &CouponView{
			Code:        activeCoupon.Code().String(),
			Type:        string(activeCoupon.Discount().Type()),
			Value:       activeCoupon.Discount().Value(),
			Description: activeCoupon.Description(),
		}
	}
	return view, nil
}
