//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/domain/reservation"
	"cusco-tours/internal/domain/tour"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/pkg/clock"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"
	"cusco-tours/internal/usecase/shared"
)

type stubTourRepo struct {
	tours map[int64]*tour.Tour
}

func (r *stubTourRepo) Create(_ context.Context, _ *tour.Tour) (int64, error) { return 0, nil }
func (r *stubTourRepo) Update(_ context.Context, _ *tour.Tour) error          { return nil }
func (r *stubTourRepo) Deactivate(_ context.Context, _ int64) error           { return nil }

func (r *stubTourRepo) FindByID(_ context.Context, id int64) (*tour.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}
	return t, nil
}

type stubReservationRepo struct {
	created []*reservation.Reservation
}

func (r *stubReservationRepo) Create(_ context.Context, _ infra.DBTX, res *reservation.Reservation) error {
	r.created = append(r.created, res)
	return nil
}

type stubUnitOfWork struct{}

func (u *stubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error {
	return fn(ctx, nil)
}

type CartCommandsTestSuite struct {
	suite.Suite
	ctx             context.Context
	profileID       uuid.UUID
	userID          uuid.UUID
	store           *kvstore.MemoryStore
	sessions        *shared.Sessions
	tourRepo        *stubTourRepo
	reservationRepo *stubReservationRepo
	clock           *clock.MockClock
	commands        commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.profileID = uuid.New()
	s.userID = uuid.New()
	s.store = kvstore.NewMemoryStore()
	s.sessions = shared.NewSessions()
	s.tourRepo = &stubTourRepo{tours: map[int64]*tour.Tour{
		1: makeTour(1, "machu-picchu", "Machu Picchu Full Day", 100, true),
		2: makeTour(2, "valle-sagrado", "Valle Sagrado", 80, true),
		3: makeTour(3, "montana-colores", "Montaña de Colores", 60, false),
	}}
	s.reservationRepo = &stubReservationRepo{}
	s.clock = clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	resolver := coupon.NewStaticCatalog()
	cartQueries := queries.NewCartQueries(s.store, s.sessions, resolver)

	s.commands = commands.NewCartCommands(
		s.store,
		s.sessions,
		resolver,
		s.tourRepo,
		s.reservationRepo,
		&stubUnitOfWork{},
		cartQueries,
		s.clock,
	)
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func makeTour(id int64, slug, title string, price int64, active bool) *tour.Tour {
	return tour.ReconstructTour(
		id,
		tour.Slug(slug),
		title,
		"",
		decimal.NewFromInt(price),
		"1 día",
		"",
		active,
		time.Time{},
		time.Time{},
	)
}

// freshProfile isolates a subtest: store slots and session state key on the
// profile id, so a new id is a clean cart.
func (s *CartCommandsTestSuite) freshProfile() {
	s.profileID = uuid.New()
}

func (s *CartCommandsTestSuite) storedItems() []map[string]any {
	var items []map[string]any
	_, err := s.store.Get(s.ctx, s.profileID, kvstore.SlotCart, &items)
	s.Require().NoError(err)
	return items
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("persists the line and snapshots the tour price", func() {
		s.freshProfile()
		view, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)

		s.Require().Len(view.Items, 1)
		s.Equal("Machu Picchu Full Day", view.Items[0].Name)
		s.Equal(2, view.Items[0].Quantity)
		s.Equal("200.00", view.Pricing.Subtotal.StringFixed(2))

		s.Require().Len(s.storedItems(), 1, "the line must be durable, not view-only")
	})

	s.Run("merges repeat adds of the same tour and date", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)
		view, err := s.commands.AddItem(s.ctx, s.profileID, 1, 3, "2026-04-01")
		s.Require().NoError(err)

		s.Require().Len(view.Items, 1)
		s.Equal(5, view.Items[0].Quantity)
	})

	s.Run("rejects a non-positive quantity", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 0, "2026-04-01")
		s.ErrorIs(err, commands.ErrInvalidQuantity)
	})

	s.Run("rejects an unknown tour", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 99, 1, "2026-04-01")
		s.ErrorIs(err, commands.ErrTourNotFound)
	})

	s.Run("rejects an inactive tour", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 3, 1, "2026-04-01")
		s.ErrorIs(err, commands.ErrTourNotFound)
	})

	s.Run("surfaces storage failures instead of dropping the write", func() {
		s.freshProfile()
		s.store.FailWrites = true
		defer func() { s.store.FailWrites = false }()

		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 1, "2026-04-01")
		s.True(infra.IsKind(err, infra.KindStorageFailure))
	})
}

func (s *CartCommandsTestSuite) TestUpdateQuantity() {
	s.Run("sets the new quantity", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.UpdateQuantity(s.ctx, s.profileID, 1, "2026-04-01", 7)
		s.Require().NoError(err)
		s.Equal(7, view.Items[0].Quantity)
		s.Equal(7, view.Units)
	})

	s.Run("zero quantity removes the line", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.UpdateQuantity(s.ctx, s.profileID, 1, "2026-04-01", 0)
		s.Require().NoError(err)
		s.Empty(view.Items)
		s.Empty(s.storedItems())
	})
}

func (s *CartCommandsTestSuite) TestRemoveAndClear() {
	s.Run("remove drops one line", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 1, "2026-04-01")
		s.Require().NoError(err)
		_, err = s.commands.AddItem(s.ctx, s.profileID, 2, 1, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.RemoveItem(s.ctx, s.profileID, 1, "2026-04-01")
		s.Require().NoError(err)
		s.Require().Len(view.Items, 1)
		s.Equal(int64(2), view.Items[0].TourID)
	})

	s.Run("clear empties the cart", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 1, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.Clear(s.ctx, s.profileID)
		s.Require().NoError(err)
		s.Empty(view.Items)
		s.Equal("0.00", view.Pricing.Total.StringFixed(2))
	})
}

func (s *CartCommandsTestSuite) TestApplyCoupon() {
	s.Run("valid code discounts the totals", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.ApplyCoupon(s.ctx, s.profileID, "bienvenido10")
		s.Require().NoError(err)

		s.Require().NotNil(view.Coupon)
		s.Equal("BIENVENIDO10", view.Coupon.Code)
		s.Equal("20.00", view.Pricing.Discount.StringFixed(2))
		s.Equal("212.40", view.Pricing.Total.StringFixed(2))
	})

	s.Run("a newer code replaces the active coupon", func() {
		s.freshProfile()
		_, err := s.commands.ApplyCoupon(s.ctx, s.profileID, "BIENVENIDO10")
		s.Require().NoError(err)

		view, err := s.commands.ApplyCoupon(s.ctx, s.profileID, "VERANO25")
		s.Require().NoError(err)
		s.Equal("VERANO25", view.Coupon.Code)
	})

	s.Run("an invalid code clears the active coupon", func() {
		s.freshProfile()
		_, err := s.commands.ApplyCoupon(s.ctx, s.profileID, "BIENVENIDO10")
		s.Require().NoError(err)

		_, err = s.commands.ApplyCoupon(s.ctx, s.profileID, "NOEXISTE99")
		s.ErrorIs(err, commands.ErrCouponNotFound)

		view, err := s.commands.RemoveCoupon(s.ctx, s.profileID)
		s.Require().NoError(err)
		s.Nil(view.Coupon, "the previous coupon must not survive a failed apply")
	})

	s.Run("remove coupon restores undiscounted totals", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 1, "2026-04-01")
		s.Require().NoError(err)
		_, err = s.commands.ApplyCoupon(s.ctx, s.profileID, "SANTIAGO50")
		s.Require().NoError(err)

		view, err := s.commands.RemoveCoupon(s.ctx, s.profileID)
		s.Require().NoError(err)
		s.Nil(view.Coupon)
		s.Equal("0.00", view.Pricing.Discount.StringFixed(2))
		s.Equal("118.00", view.Pricing.Total.StringFixed(2))
	})
}

func (s *CartCommandsTestSuite) TestToggleService() {
	s.Run("selecting a service raises the totals", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 1, "2026-04-01")
		s.Require().NoError(err)

		view, err := s.commands.ToggleService(s.ctx, s.profileID, 1, true)
		s.Require().NoError(err)

		s.Equal("25.00", view.Pricing.ServicesTotal.StringFixed(2))
		s.Equal("147.50", view.Pricing.Total.StringFixed(2))
	})

	s.Run("deselecting removes its contribution", func() {
		s.freshProfile()
		_, err := s.commands.ToggleService(s.ctx, s.profileID, 1, true)
		s.Require().NoError(err)

		view, err := s.commands.ToggleService(s.ctx, s.profileID, 1, false)
		s.Require().NoError(err)
		s.Equal("0.00", view.Pricing.ServicesTotal.StringFixed(2))
	})

	s.Run("unknown service is rejected", func() {
		s.freshProfile()
		_, err := s.commands.ToggleService(s.ctx, s.profileID, 99, true)
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})
}

func (s *CartCommandsTestSuite) TestCheckout() {
	s.Run("empty cart cannot check out", func() {
		s.freshProfile()
		_, err := s.commands.Checkout(s.ctx, s.profileID, s.userID)
		s.ErrorIs(err, commands.ErrEmptyCart)
	})

	s.Run("books one reservation per line and resets the session", func() {
		s.freshProfile()
		_, err := s.commands.AddItem(s.ctx, s.profileID, 1, 2, "2026-04-01")
		s.Require().NoError(err)
		_, err = s.commands.AddItem(s.ctx, s.profileID, 2, 1, "2026-04-02")
		s.Require().NoError(err)
		_, err = s.commands.ApplyCoupon(s.ctx, s.profileID, "BIENVENIDO10")
		s.Require().NoError(err)

		result, err := s.commands.Checkout(s.ctx, s.profileID, s.userID)
		s.Require().NoError(err)

		s.Len(result.ReservationIDs, 2)
		s.Require().Len(s.reservationRepo.created, 2)
		s.Equal(s.userID, s.reservationRepo.created[0].UserID())
		s.Equal(2, s.reservationRepo.created[0].People())
		s.Equal("200.00", s.reservationRepo.created[0].Total().StringFixed(2))

		// Checkout pricing reflects the coupon that was active at the time.
		s.Equal("28.00", result.Pricing.Discount.StringFixed(2))

		s.Empty(s.storedItems(), "the cart must be emptied after checkout")

		view, err := s.commands.RemoveCoupon(s.ctx, s.profileID)
		s.Require().NoError(err)
		s.Empty(view.Items)
		s.Nil(view.Coupon)
	})
}
