package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"cusco-tours/internal/domain/tour"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/errs"
)

var ErrSlugTaken = errs.New("slug already in use")

type CreateTourParams struct {
	Slug        string
	Title       string
	Description string
	Price       decimal.Decimal
	Duration    string
	Image       string
}

type UpdateTourParams struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Duration    *string
	Image       *string
}

type TourCommands interface {
	CreateTour(ctx context.Context, params CreateTourParams) (int64, error)
	UpdateTour(ctx context.Context, id int64, params UpdateTourParams) error
	DeactivateTour(ctx context.Context, id int64) error
}

type tourCommandsImpl struct {
	tourRepo TourRepository
}

func NewTourCommands(tourRepo TourRepository) TourCommands {
	return &tourCommandsImpl{tourRepo: tourRepo}
}

func (t *tourCommandsImpl) CreateTour(ctx context.Context, params CreateTourParams) (int64, error) {
	slug, err := tour.NewSlug(params.Slug)
	if err != nil {
		return 0, err
	}

	entity, err := tour.NewTour(slug, params.Title, params.Description, params.Price, params.Duration, params.Image)
	if err != nil {
		return 0, err
	}

	id, err := t.tourRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, ErrSlugTaken
		}
		return 0, err
	}
	return id, nil
}

func (t *tourCommandsImpl) UpdateTour(ctx context.Context, id int64, params UpdateTourParams) error {
	existing, err := t.tourRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTourNotFound
		}
		return err
	}

	title := existing.Title()
	if params.Title != nil {
		title = *params.Title
	}
	description := existing.Description()
	if params.Description != nil {
		description = *params.Description
	}
	price := existing.Price()
	if params.Price != nil {
		price = *params.Price
	}
	duration := existing.Duration()
	if params.Duration != nil {
		duration = *params.Duration
	}
	image := existing.Image()
	if params.Image != nil {
		image = *params.Image
	}

	updated, err := tour.NewTour(existing.Slug(), title, description, price, duration, image)
	if err != nil {
		return err
	}

	patched := tour.ReconstructTour(
		existing.ID(),
		updated.Slug(),
		updated.Title(),
		updated.Description(),
		updated.Price(),
		updated.Duration(),
		updated.Image(),
		existing.IsActive(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	)

	return t.tourRepo.Update(ctx, patched)
}

func (t *tourCommandsImpl) DeactivateTour(ctx context.Context, id int64) error {
	if err := t.tourRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTourNotFound
		}
		return err
	}
	return nil
}
