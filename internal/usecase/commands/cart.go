package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"cusco-tours/internal/domain/cart"
	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/domain/pricing"
	"cusco-tours/internal/domain/reservation"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/pkg/clock"
	"cusco-tours/internal/pkg/errs"
	"cusco-tours/internal/usecase/queries"
	"cusco-tours/internal/usecase/shared"
)

var (
	ErrTourNotFound      = errs.New("tour not found")
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrServiceNotFound   = errs.New("additional service not found")
	ErrInvalidQuantity   = errs.New("invalid quantity")
	ErrInvalidTravelDate = errs.New("invalid travel date")
	ErrEmptyCart         = errs.New("cart is empty")
)

type CheckoutResult struct {
	ReservationIDs []uuid.UUID
	Pricing        pricing.Snapshot
}

type CartCommands interface {
	AddItem(ctx context.Context, profileID uuid.UUID, tourID int64, quantity int, date string) (*queries.CartView, error)
	RemoveItem(ctx context.Context, profileID uuid.UUID, tourID int64, date string) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, profileID uuid.UUID, tourID int64, date string, quantity int) (*queries.CartView, error)
	Clear(ctx context.Context, profileID uuid.UUID) (*queries.CartView, error)
	ApplyCoupon(ctx context.Context, profileID uuid.UUID, code string) (*queries.CartView, error)
	RemoveCoupon(ctx context.Context, profileID uuid.UUID) (*queries.CartView, error)
	ToggleService(ctx context.Context, profileID uuid.UUID, serviceID int64, selected bool) (*queries.CartView, error)
	Checkout(ctx context.Context, profileID, userID uuid.UUID) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	store           kvstore.Store
	sessions        *shared.Sessions
	resolver        coupon.Resolver
	tourRepo        TourRepository
	reservationRepo ReservationRepository
	uow             shared.UnitOfWork
	cartQueries     queries.CartQueries
	clock           clock.Clock
}

func NewCartCommands(
	store kvstore.Store,
	sessions *shared.Sessions,
	resolver coupon.Resolver,
	tourRepo TourRepository,
	reservationRepo ReservationRepository,
	uow shared.UnitOfWork,
	cartQueries queries.CartQueries,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		store:           store,
		sessions:        sessions,
		resolver:        resolver,
		tourRepo:        tourRepo,
		reservationRepo: reservationRepo,
		uow:             uow,
		cartQueries:     cartQueries,
		clock:           clock,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, profileID uuid.UUID, tourID int64, quantity int, date string) (*queries.CartView, error) {
	// Reject at the boundary instead of storing a malformed line.
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	t, err := c.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	if !t.IsActive() {
		return nil, ErrTourNotFound
	}

	current, err := c.loadCart(ctx, profileID)
	if err != nil {
		return nil, err
	}

	item := cart.LineItem{
		TourID:    t.ID(),
		Name:      t.Title(),
		Image:     t.Image(),
		Date:      date,
		Quantity:  quantity,
		UnitPrice: t.Price(),
	}
	if err := current.Add(item, c.clock.Now()); err != nil {
		return nil, mapCartErr(err)
	}

	if err := c.persist(ctx, profileID, current); err != nil {
		return nil, err
	}
	return c.cartQueries.GetCart(ctx, profileID)
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, profileID uuid.UUID, tourID int64, date string) (*queries.CartView, error) {
	current, err := c.loadCart(ctx, profileID)
	if err != nil {
		return nil, err
	}

	current.Remove(tourID, date)

	if err := c.persist(ctx, profileID, current); err != nil {
		return nil, err
	}
	return c.cartQueries.GetCart(ctx, profileID)
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, profileID uuid.UUID, tourID int64, date string, quantity int) (*queries.CartView, error) {
	current, err := c.loadCart(ctx, profileID)
	if err != nil {
		return nil, err
	}

	current.UpdateQuantity(tourID, date, quantity)

	if err := c.persist(ctx, profileID, current); err != nil {
		return nil, err
	}
	return c.cartQueries.GetCart(ctx, profileID)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, profileID uuid.UUID) (*queries.CartView, error) {
	current, err := c.loadCart(ctx, profileID)
	if err != nil {
		return nil, err
	}

	current.Clear()

	if err := c.persist(ctx, profileID, current); err != nil {
		return nil, err
	}
	return c.cartQueries.GetCart(ctx, profileID)
}

// ApplyCoupon replaces the active coupon with the resolved one. An
// unresolvable code is not a no-op: it clears the active coupon before
// reporting the failure, so re-entering an invalid code after a valid one
// removes the discount.
func (c *cartCommandsImpl) ApplyCoupon(ctx context.Context, profileID uuid.UUID, code string) (*queries.CartView, error) {
	resolved, err := c.resolver.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, coupon.ErrNotFound) {
			c.sessions.ClearCoupon(profileID)
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	c.sessions.SetCoupon(profileID, resolved.Code().String())
	return c.cartQueries.GetCart(ctx, profileID)
}

func (c *cartCommandsImpl) RemoveCoupon(ctx context.Context, profileID uuid.UUID) (*queries.CartView, error) {
	c.sessions.ClearCoupon(profileID)
	return c.cartQueries.GetCart(ctx, profileID)
}

func (c *cartCommandsImpl) ToggleService(ctx context.Context, profileID uuid.UUID, serviceID int64, selected bool) (*queries.CartView, error) {
	known := false
	for _, svc := range pricing.ServiceCatalog() {
		if svc.ID == serviceID {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrServiceNotFound
	}

	c.sessions.ToggleService(profileID, serviceID, selected)
	return c.cartQueries.GetCart(ctx, profileID)
}

// Checkout books every cart line as a reservation in one transaction, then
// empties the cart and drops the session coupon and services.
func (c *cartCommandsImpl) Checkout(ctx context.Context, profileID, userID uuid.UUID) (*CheckoutResult, error) {
	view, err := c.cartQueries.GetCart(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrEmptyCart
	}

	reservations := make([]*reservation.Reservation, 0, len(view.Items))
	for _, item := range view.Items {
		res, err := reservation.FromLineItem(userID, item)
		if err != nil {
			return nil, mapCartErr(err)
		}
		reservations = append(reservations, res)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		for _, res := range reservations {
			if err := c.reservationRepo.Create(ctx, tx, res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The order is booked; a failed cart clear must not fail the checkout.
	if err := c.store.Set(ctx, profileID, kvstore.SlotCart, []cart.LineItem{}); err != nil {
		slog.Warn("failed to clear cart after checkout", "profile_id", profileID, "error", err.Error())
	}
	c.sessions.Reset(profileID)

	ids := make([]uuid.UUID, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID()
	}

	return &CheckoutResult{
		ReservationIDs: ids,
		Pricing:        view.Pricing,
	}, nil
}

func (c *cartCommandsImpl) loadCart(ctx context.Context, profileID uuid.UUID) (*cart.Cart, error) {
	var items []cart.LineItem
	if _, err := c.store.Get(ctx, profileID, kvstore.SlotCart, &items); err != nil {
		return nil, err
	}
	return cart.Reconstruct(items), nil
}

// persist mirrors the whole cart to the store; every mutation is durable
// before the caller sees the refreshed view.
func (c *cartCommandsImpl) persist(ctx context.Context, profileID uuid.UUID, current *cart.Cart) error {
	return c.store.Set(ctx, profileID, kvstore.SlotCart, current.Items())
}

func mapCartErr(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, reservation.ErrInvalidPeople):
		return errs.Mark(err, ErrInvalidQuantity)
	case errors.Is(err, cart.ErrInvalidTravelDate):
		return errs.Mark(err, ErrInvalidTravelDate)
	}
	return err
}
