package pricing

import "github.com/shopspring/decimal"

// Service is an add-on sold alongside the tours in the cart. A selected
// service contributes its full price once, independent of line quantities.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Selected    bool
}

// ServiceCatalog returns the available add-on services, all unselected.
// Selection is session state and is never persisted, so every load starts
// from this catalog.
func ServiceCatalog() []Service {
	return []Service{
		{
			ID:          1,
			Name:        "Seguro de viaje",
			Description: "Cobertura médica y de cancelación",
			Price:       decimal.NewFromInt(25),
		},
		{
			ID:          2,
			Name:        "Fotos profesionales",
			Description: "Sesión fotográfica durante el tour",
			Price:       decimal.NewFromInt(50),
		},
		{
			ID:          3,
			Name:        "Almuerzo gourmet",
			Description: "Almuerzo en restaurante premium",
			Price:       decimal.NewFromInt(35),
		},
	}
}

// SelectServices marks the catalog entries whose IDs appear in selectedIDs.
// Unknown IDs are ignored.
func SelectServices(catalog []Service, selectedIDs []int64) []Service {
	selected := make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	services := make([]Service, len(catalog))
	copy(services, catalog)
	for i := range services {
		services[i].Selected = selected[services[i].ID]
	}
	return services
}
