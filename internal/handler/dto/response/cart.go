package response

import (
	"time"

	"cusco-tours/internal/domain/cart"
	"cusco-tours/internal/domain/pricing"
	"cusco-tours/internal/usecase/queries"
)

type CartItemResponse struct {
	TourID    int64     `json:"tourId"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	Date      string    `json:"date"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unitPrice"`
	LineTotal string    `json:"lineTotal"`
	AddedAt   time.Time `json:"addedAt"`
}

type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Selected    bool   `json:"selected"`
}

type CouponResponse struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type PricingResponse struct {
	Subtotal      string `json:"subtotal"`
	ServicesTotal string `json:"servicesTotal"`
	Discount      string `json:"discount"`
	Taxes         string `json:"taxes"`
	Total         string `json:"total"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Units    int                `json:"units"`
	Services []ServiceResponse  `json:"services"`
	Coupon   *CouponResponse    `json:"coupon,omitempty"`
	Pricing  PricingResponse    `json:"pricing"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = fromLineItem(item)
	}

	services := make([]ServiceResponse, len(view.Services))
	for i, svc := range view.Services {
		services[i] = fromService(svc)
	}

	resp := &CartResponse{
		Items:    items,
		Units:    view.Units,
		Services: services,
		Pricing:  fromSnapshot(view.Pricing),
	}
	if view.Coupon != nil {
		resp.Coupon = &CouponResponse{
			Code:        view.Coupon.Code,
			Type:        view.Coupon.Type,
			Value:       view.Coupon.Value.StringFixed(2),
			Description: view.Coupon.Description,
		}
	}
	return resp
}

func fromLineItem(item cart.LineItem) CartItemResponse {
	return CartItemResponse{
		TourID:    item.TourID,
		Name:      item.Name,
		Image:     item.Image,
		Category:  item.Category,
		Date:      item.Date,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.StringFixed(2),
		LineTotal: item.LineTotal().StringFixed(2),
		AddedAt:   item.AddedAt,
	}
}

func fromService(svc pricing.Service) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price.StringFixed(2),
		Selected:    svc.Selected,
	}
}

func fromSnapshot(s pricing.Snapshot) PricingResponse {
	return PricingResponse{
		Subtotal:      s.Subtotal.StringFixed(2),
		ServicesTotal: s.ServicesTotal.StringFixed(2),
		Discount:      s.Discount.StringFixed(2),
		Taxes:         s.Taxes.StringFixed(2),
		Total:         s.Total.StringFixed(2),
	}
}
