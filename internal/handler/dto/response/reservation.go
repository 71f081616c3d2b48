package response

import (
	"time"

	"github.com/google/uuid"

	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	TourID    int64     `json:"tourId"`
	TourTitle string    `json:"tourTitle"`
	Date      string    `json:"date"`
	People    int       `json:"people"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        view.ID,
		TourID:    view.TourID,
		TourTitle: view.TourTitle,
		Date:      view.Date,
		People:    view.People,
		Total:     view.Total.StringFixed(2),
		Status:    view.Status,
		CreatedAt: view.CreatedAt,
	}
}

func FromReservationViews(views []queries.ReservationView) []ReservationResponse {
	resps := make([]ReservationResponse, len(views))
	for i := range views {
		resps[i] = *FromReservationView(&views[i])
	}
	return resps
}

type CheckoutResponse struct {
	ReservationIDs []uuid.UUID     `json:"reservationIds"`
	Pricing        PricingResponse `json:"pricing"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		ReservationIDs: result.ReservationIDs,
		Pricing:        fromSnapshot(result.Pricing),
	}
}
