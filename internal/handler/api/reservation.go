package api

import (
	"net/http"

	reqdto "condo-reserve/internal/handler/dto/request"
	resdto "condo-reserve/internal/handler/dto/response"
	"condo-reserve/internal/handler/middleware"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/usecase/commands"
	"condo-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(
	bookingCommands commands.BookingCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Book an amenity slot
// @Description Validate and admit one booking against the amenity's weekly rules
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
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

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateReservation(c.Request.Context(), condoID, userID, req.ToParams())
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// Every rejection carries one specific reason so residents see "slot is
// full" rather than a generic failure.
func (h *ReservationHandler) renderBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrAmenityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
	case errs.Is(err, errs.ErrNoRuleForDay):
		c.JSON(http.StatusNotFound, gin.H{"error": "The amenity is closed on that day"})
	case errs.Is(err, errs.ErrAmenityNotReservable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amenity is not open for reservations"})
	case errs.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
	case errs.Is(err, errs.ErrOutsideHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested time is outside opening hours"})
	case errs.Is(err, errs.ErrLeadTimeViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested time violates the booking lead-time window"})
	case errs.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking input"})
	case errs.Is(err, errs.ErrSlotFull):
		c.JSON(http.StatusConflict, gin.H{"error": "This slot is already full"})
	case errs.Is(err, errs.ErrDailyLimitReached):
		c.JSON(http.StatusConflict, gin.H{"error": "You have reached your daily reservation limit"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	condoID, ok := middleware.GetCondoID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), condoID, id)
	if err != nil {
		if errs.Is(err, errs.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the current resident's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
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

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), condoID, userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationView(view)
	}
	c.JSON(http.StatusOK, response)
}
