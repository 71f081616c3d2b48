package api

import (
	"errors"
	"net/http"
	"strconv"

	"cusco-tours/internal/domain/tour"
	reqdto "cusco-tours/internal/handler/dto/request"
	resdto "cusco-tours/internal/handler/dto/response"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	tourCommands commands.TourCommands
	tourQueries  queries.TourQueries
}

func NewTourHandler(tourCommands commands.TourCommands, tourQueries queries.TourQueries) *TourHandler {
	return &TourHandler{
		tourCommands: tourCommands,
		tourQueries:  tourQueries,
	}
}

// @Summary List tours
// @Description List active tours, optionally filtered by a search term
// @Tags tours
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} resdto.TourResponse
// @Router /tours [get]
func (h *TourHandler) ListTours(c *gin.Context) {
	views, err := h.tourQueries.ListTours(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTourViews(views))
}

// @Summary Get tour by slug
// @Description Get a single active tour
// @Tags tours
// @Produce json
// @Param slug path string true "Tour slug"
// @Success 200 {object} resdto.TourResponse
// @Failure 404 {object} map[string]string
// @Router /tours/{slug} [get]
func (h *TourHandler) GetTour(c *gin.Context) {
	view, err := h.tourQueries.GetTourBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTourView(view))
}

// @Summary Create tour
// @Description Add a tour to the catalog
// @Tags tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTourRequest true "Tour request"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tours [post]
func (h *TourHandler) CreateTour(c *gin.Context) {
	var req reqdto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.tourCommands.CreateTour(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slug already in use",
			})
		case errors.Is(err, tour.ErrInvalidSlug), errors.Is(err, tour.ErrInvalidTitle), errors.Is(err, tour.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update tour
// @Description Patch tour fields
// @Tags tours
// @Accept json
// @Security BearerAuth
// @Param id path int true "Tour ID"
// @Param request body reqdto.UpdateTourRequest true "Update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tours/{id} [patch]
func (h *TourHandler) UpdateTour(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tour ID",
		})
		return
	}

	var req reqdto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.tourCommands.UpdateTour(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
		case errors.Is(err, tour.ErrInvalidTitle), errors.Is(err, tour.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate tour
// @Description Remove a tour from the active catalog
// @Tags tours
// @Security BearerAuth
// @Param id path int true "Tour ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /tours/{id} [delete]
func (h *TourHandler) DeactivateTour(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tour ID",
		})
		return
	}

	if err := h.tourCommands.DeactivateTour(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
