package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"RENTEASE_BACK-END/internal/dto"
	"RENTEASE_BACK-END/internal/models"
	"RENTEASE_BACK-END/internal/store"
	"RENTEASE_BACK-END/internal/utils"
)

// BookingsHandler handles renter-facing booking requests
type BookingsHandler struct {
	properties store.PropertyStore
	bookings   store.BookingStore
}

// NewBookingsHandler creates a new BookingsHandler instance
func NewBookingsHandler(properties store.PropertyStore, bookings store.BookingStore) *BookingsHandler {
	return &BookingsHandler{properties: properties, bookings: bookings}
}

// BookingHandle creates a booking request for a property
// @Summary Book a property
// @Description Create a pending booking request for an available property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.MessageResponse "Booking request created"
// @Failure 400 {object} dto.ErrorResponse "Property not available or not found"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/bookinghandle/{propertyId} [post]
func (h *BookingsHandler) BookingHandle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	propertyID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/user/bookinghandle/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "startDate must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "endDate must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	if endDate.Before(startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "endDate cannot be before startDate")
		return
	}

	property, err := h.properties.GetByID(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Property not available or not found")
			return
		}
		utils.WriteInternalErrorResponse(w, "BookingHandle", err)
		return
	}
	if property.IsAvailable == models.PropertyUnavailable {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Property not available or not found")
		return
	}

	// Snapshot the display fields now; later listing edits must not
	// change what the renter booked. Availability is deliberately not
	// flipped here, that happens when the owner approves.
	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New(),
		PropertyID:    property.ID,
		RenterID:      userID,
		OwnerID:       property.OwnerID,
		StartDate:     startDate,
		EndDate:       endDate,
		Message:       req.Message,
		BookingStatus: models.BookingPending,
		PropertyName:  property.Name,
		PropertyImage: property.FirstImage(),
		Rent:          property.Rent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.bookings.Create(r.Context(), booking); err != nil {
		utils.WriteInternalErrorResponse(w, "BookingHandle", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{
		Message: "Booking request sent successfully. Waiting for owner's approval.",
		Success: true,
	})
}

// GetAllBookings lists the authenticated renter's bookings
// @Summary List my bookings
// @Description Return every booking made by the authenticated user, any status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse "Bookings"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/getallbookings [get]
func (h *BookingsHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	bookings, err := h.bookings.ListByRenter(r.Context(), userID)
	if err != nil {
		utils.WriteInternalErrorResponse(w, "GetAllBookings", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    bookings,
	})
}
