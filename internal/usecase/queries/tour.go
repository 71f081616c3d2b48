package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/errs"
)

var ErrTourNotFound = errs.New("tour not found")

type TourView struct {
	ID          int64
	Slug        string
	Title       string
	Description string
	Price       decimal.Decimal
	Duration    string
	Image       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TourReadStore interface {
	ListActive(ctx context.Context, search string) ([]TourView, error)
	FindBySlug(ctx context.Context, slug string) (*TourView, error)
}

type TourQueries interface {
	ListTours(ctx context.Context, search string) ([]TourView, error)
	GetTourBySlug(ctx context.Context, slug string) (*TourView, error)
}

type tourQueriesImpl struct {
	readStore TourReadStore
}

func NewTourQueries(readStore TourReadStore) TourQueries {
	return &tourQueriesImpl{readStore: readStore}
}

func (q *tourQueriesImpl) ListTours(ctx context.Context, search string) ([]TourView, error) {
	return q.readStore.ListActive(ctx, search)
}

func (q *tourQueriesImpl) GetTourBySlug(ctx context.Context, slug string) (*TourView, error) {
	view, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return view, nil
}
