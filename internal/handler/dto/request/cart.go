package request

type AddCartItemRequest struct {
	TourID   int64  `json:"tourId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Date     string `json:"date"`
}

type UpdateQuantityRequest struct {
	TourID   int64  `json:"tourId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Quantity int    `json:"quantity"`
}

type RemoveCartItemRequest struct {
	TourID int64  `json:"tourId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type ToggleServiceRequest struct {
	ServiceID int64 `json:"serviceId" binding:"required"`
	Selected  bool  `json:"selected"`
}

type ToggleFavoriteRequest struct {
	TourID int64 `json:"tourId" binding:"required"`
}
