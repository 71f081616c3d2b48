package response

type FavoritesResponse struct {
	TourIDs []int64 `json:"tourIds"`
}
