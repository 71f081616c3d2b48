package api

import (
	"net/http"

	reqdto "cusco-tours/internal/handler/dto/request"
	resdto "cusco-tours/internal/handler/dto/response"
	"cusco-tours/internal/handler/middleware"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoritesCommands commands.FavoritesCommands
	favoritesQueries  queries.FavoritesQueries
}

func NewFavoriteHandler(favoritesCommands commands.FavoritesCommands, favoritesQueries queries.FavoritesQueries) *FavoriteHandler {
	return &FavoriteHandler{
		favoritesCommands: favoritesCommands,
		favoritesQueries:  favoritesQueries,
	}
}

// @Summary List favorites
// @Description List the favorited tour ids for this profile
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.FavoritesResponse
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	tourIDs, err := h.favoritesQueries.ListFavorites(c.Request.Context(), profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FavoritesResponse{TourIDs: tourIDs})
}

// @Summary Toggle favorite
// @Description Add or remove a tour from the favorites list
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleFavoriteRequest true "Toggle request"
// @Success 200 {object} resdto.FavoritesResponse
// @Failure 400 {object} map[string]string
// @Router /favorites/toggle [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	tourIDs, err := h.favoritesCommands.ToggleFavorite(c.Request.Context(), profileID, req.TourID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FavoritesResponse{TourIDs: tourIDs})
}
