package request

import (
	"github.com/shopspring/decimal"

	"cusco-tours/internal/usecase/commands"
)

type CreateTourRequest struct {
	Slug        string          `json:"slug" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Duration    string          `json:"duration"`
	Image       string          `json:"image"`
}

func (r *CreateTourRequest) ToParams() commands.CreateTourParams {
	return commands.CreateTourParams{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
	}
}

type UpdateTourRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *string          `json:"duration"`
	Image       *string          `json:"image"`
}

func (r *UpdateTourRequest) ToParams() commands.UpdateTourParams {
	return commands.UpdateTourParams{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
	}
}
