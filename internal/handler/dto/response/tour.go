package response

import (
	"github.com/jinzhu/copier"

	"cusco-tours/internal/usecase/queries"
)

type TourResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}

func FromTourView(view *queries.TourView) *TourResponse {
	var resp TourResponse
	_ = copier.Copy(&resp, view)
	resp.Price = view.Price.StringFixed(2)
	return &resp
}

func FromTourViews(views []queries.TourView) []TourResponse {
	resps := make([]TourResponse, len(views))
	for i := range views {
		resps[i] = *FromTourView(&views[i])
	}
	return resps
}
