package api

import (
	"net/http"

	reqdto "condo-reserve/internal/handler/dto/request"
	resdto "condo-reserve/internal/handler/dto/response"
	"condo-reserve/internal/handler/middleware"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	amenityQueries      queries.AmenityQueries
}

func NewAvailabilityHandler(
	availabilityQueries queries.AvailabilityQueries,
	amenityQueries queries.AmenityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		amenityQueries:      amenityQueries,
	}
}

// @Summary Amenity availability
// @Description Bookable slot starts per day over a date range, with advisory per-day user limit flags
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param start query string false "Range start date (YYYY-MM-DD)"
// @Param days query int false "Number of days from start"
// @Param from query string false "Range start instant (RFC3339)"
// @Param to query string false "Range end instant (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	condoID, ok := middleware.GetCondoID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amenity ID format"})
		return
	}

	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	window, err := query.ToWindow()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.availabilityQueries.ForAmenity(c.Request.Context(), condoID, amenityID, window, &userID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAmenityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		case errs.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Amenity detail
// @Description Amenity metadata the booking UI needs
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{id} [get]
func (h *AvailabilityHandler) GetAmenity(c *gin.Context) {
	condoID, ok := middleware.GetCondoID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amenity ID format"})
		return
	}

	view, err := h.amenityQueries.GetByID(c.Request.Context(), condoID, amenityID)
	if err != nil {
		if errs.Is(err, errs.ErrAmenityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}
