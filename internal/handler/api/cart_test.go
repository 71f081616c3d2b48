//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/domain/reservation"
	"cusco-tours/internal/domain/tour"
	"cusco-tours/internal/handler/api"
	resdto "cusco-tours/internal/handler/dto/response"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/pkg/clock"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"
	"cusco-tours/internal/usecase/shared"
)

type stubTours struct {
	tours map[int64]*tour.Tour
}

func (r *stubTours) Create(_ context.Context, _ *tour.Tour) (int64, error) { return 0, nil }
func (r *stubTours) Update(_ context.Context, _ *tour.Tour) error          { return nil }
func (r *stubTours) Deactivate(_ context.Context, _ int64) error           { return nil }

func (r *stubTours) FindByID(_ context.Context, id int64) (*tour.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}
	return t, nil
}

type noopReservations struct{}

func (r *noopReservations) Create(_ context.Context, _ infra.DBTX, _ *reservation.Reservation) error {
	return nil
}

type noopUow struct{}

func (u *noopUow) Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error {
	return fn(ctx, nil)
}

type CartHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	profileID uuid.UUID
	store     *kvstore.MemoryStore
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.profileID = uuid.New()
	s.store = kvstore.NewMemoryStore()
	sessions := shared.NewSessions()
	resolver := coupon.NewStaticCatalog()
	cartQueries := queries.NewCartQueries(s.store, sessions, resolver)

	tourRepo := &stubTours{tours: map[int64]*tour.Tour{
		1: tour.ReconstructTour(1, tour.Slug("machu-picchu"), "Machu Picchu Full Day", "", decimal.NewFromInt(100), "1 día", "", true, time.Time{}, time.Time{}),
	}}

	cartCommands := commands.NewCartCommands(
		s.store,
		sessions,
		resolver,
		tourRepo,
		&noopReservations{},
		&noopUow{},
		cartQueries,
		clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
	)

	handler := api.NewCartHandler(cartCommands, cartQueries)

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("profile_id", s.profileID)
		c.Next()
	})
	s.router.GET("/cart", handler.GetCart)
	s.router.POST("/cart/items", handler.AddItem)
	s.router.PATCH("/cart/items", handler.UpdateQuantity)
	s.router.POST("/cart/coupon", handler.ApplyCoupon)
	s.router.DELETE("/cart/coupon", handler.RemoveCoupon)
	s.router.POST("/cart/services", handler.ToggleService)
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *CartHandlerTestSuite) decodeCart(rec *httptest.ResponseRecorder) resdto.CartResponse {
	var resp resdto.CartResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *CartHandlerTestSuite) TestGetCart() {
	rec := s.perform(http.MethodGet, "/cart", nil)

	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeCart(rec)
	s.Empty(resp.Items)
	s.Equal("0.00", resp.Pricing.Total)
	s.Len(resp.Services, 3)
}

func (s *CartHandlerTestSuite) TestAddItem() {
	s.Run("returns the refreshed cart", func() {
		rec := s.perform(http.MethodPost, "/cart/items", gin.H{
			"tourId": 1, "quantity": 2, "date": "2026-04-01",
		})

		s.Equal(http.StatusOK, rec.Code)
		resp := s.decodeCart(rec)
		s.Require().Len(resp.Items, 1)
		s.Equal("100.00", resp.Items[0].UnitPrice)
		s.Equal("236.00", resp.Pricing.Total)
	})

	s.Run("unknown tour is 404", func() {
		rec := s.perform(http.MethodPost, "/cart/items", gin.H{
			"tourId": 99, "quantity": 1, "date": "2026-04-01",
		})
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing quantity is 400", func() {
		rec := s.perform(http.MethodPost, "/cart/items", gin.H{
			"tourId": 1, "date": "2026-04-01",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestCoupon() {
	s.Run("apply then remove", func() {
		s.perform(http.MethodPost, "/cart/items", gin.H{"tourId": 1, "quantity": 2, "date": "2026-04-01"})

		rec := s.perform(http.MethodPost, "/cart/coupon", gin.H{"code": "BIENVENIDO10"})
		s.Equal(http.StatusOK, rec.Code)
		resp := s.decodeCart(rec)
		s.Require().NotNil(resp.Coupon)
		s.Equal("20.00", resp.Pricing.Discount)

		rec = s.perform(http.MethodDelete, "/cart/coupon", nil)
		s.Equal(http.StatusOK, rec.Code)
		resp = s.decodeCart(rec)
		s.Nil(resp.Coupon)
		s.Equal("0.00", resp.Pricing.Discount)
	})

	s.Run("unknown code is 404", func() {
		rec := s.perform(http.MethodPost, "/cart/coupon", gin.H{"code": "NOEXISTE99"})
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestToggleService() {
	rec := s.perform(http.MethodPost, "/cart/services", gin.H{"serviceId": 2, "selected": true})

	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeCart(rec)
	s.Equal("50.00", resp.Pricing.ServicesTotal)
}
