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

// OwnerHandler handles the owner-side endpoints: managing listings and
// deciding on booking requests
type OwnerHandler struct {
	properties store.PropertyStore
	bookings   store.BookingStore
}

// NewOwnerHandler creates a new OwnerHandler instance
func NewOwnerHandler(properties store.PropertyStore, bookings store.BookingStore) *OwnerHandler {
	return &OwnerHandler{properties: properties, bookings: bookings}
}

// AddProperty creates a new listing owned by the authenticated owner
// @Summary Add a property
// @Description Create a new rental listing, available for booking by default
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddPropertyRequest true "Property details"
// @Success 201 {object} dto.MessageResponse "Property added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Owner access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/owner/addproperty [post]
func (h *OwnerHandler) AddProperty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	var req dto.AddPropertyRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.PropertyName = strings.TrimSpace(req.PropertyName)
	if req.PropertyName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "propertyName is required")
		return
	}
	if req.Rent <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "rent must be greater than zero")
		return
	}

	images := req.PropertyImages
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	property := &models.Property{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        req.PropertyName,
		Images:      images,
		Rent:        req.Rent,
		IsAvailable: models.PropertyAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.properties.Create(r.Context(), property); err != nil {
		utils.WriteInternalErrorResponse(w, "AddProperty", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{
		Message: "Property added successfully",
		Success: true,
	})
}

// GetOwnerProperties lists the authenticated owner's listings
// @Summary List my properties
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse "Properties"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/owner/getallproperties [get]
func (h *OwnerHandler) GetOwnerProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	properties, err := h.properties.ListByOwner(r.Context(), userID)
	if err != nil {
		utils.WriteInternalErrorResponse(w, "GetOwnerProperties", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    properties,
	})
}

// UpdateProperty updates an owner's listing
// @Summary Update a property
// @Description Update name, images, rent, or availability of an owned listing
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse "Property updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not the property owner"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/owner/updateproperty/{propertyId} [put]
func (h *OwnerHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	propertyID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/owner/updateproperty/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req dto.UpdatePropertyRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	property, err := h.properties.GetByID(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.WriteInternalErrorResponse(w, "UpdateProperty", err)
		return
	}
	if property.OwnerID != userID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "You do not own this property")
		return
	}

	if req.PropertyName != nil {
		name := strings.TrimSpace(*req.PropertyName)
		if name == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "propertyName cannot be empty")
			return
		}
		property.Name = name
	}
	if req.PropertyImages != nil {
		property.Images = *req.PropertyImages
	}
	if req.Rent != nil {
		if *req.Rent <= 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "rent must be greater than zero")
			return
		}
		property.Rent = *req.Rent
	}
	if req.IsAvailable != nil {
		if *req.IsAvailable != models.PropertyAvailable && *req.IsAvailable != models.PropertyUnavailable {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "isAvailable must be Available or Unavailable")
			return
		}
		property.IsAvailable = *req.IsAvailable
	}
	property.UpdatedAt = time.Now()

	if err := h.properties.Update(r.Context(), property); err != nil {
		utils.WriteInternalErrorResponse(w, "UpdateProperty", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Message: "Property updated successfully",
		Success: true,
	})
}

// GetOwnerBookings lists booking requests against the owner's properties
// @Summary List bookings for my properties
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse "Bookings"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/owner/getallbookings [get]
func (h *OwnerHandler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	bookings, err := h.bookings.ListByOwner(r.Context(), userID)
	if err != nil {
		utils.WriteInternalErrorResponse(w, "GetOwnerBookings", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    bookings,
	})
}

// HandleBookingStatus approves or rejects a pending booking. Approving
// marks the property unavailable, closing it to further bookings.
// @Summary Approve or reject a booking
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Param request body dto.HandleBookingStatusRequest true "Decision"
// @Success 200 {object} dto.MessageResponse "Booking updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status or booking already handled"
// @Failure 403 {object} dto.ErrorResponse "Not the property owner"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/owner/handlebookingstatus/{bookingId} [put]
func (h *OwnerHandler) HandleBookingStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	bookingID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/owner/handlebookingstatus/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.HandleBookingStatusRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Status != models.BookingApproved && req.Status != models.BookingRejected {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.WriteInternalErrorResponse(w, "HandleBookingStatus", err)
		return
	}
	if booking.OwnerID != userID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "You do not own this property")
		return
	}
	if booking.BookingStatus != models.BookingPending {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Booking has already been handled")
		return
	}

	if err := h.bookings.UpdateStatus(r.Context(), bookingID, req.Status); err != nil {
		utils.WriteInternalErrorResponse(w, "HandleBookingStatus", err)
		return
	}

	if req.Status == models.BookingApproved {
		property, err := h.properties.GetByID(r.Context(), booking.PropertyID)
		if err != nil {
			utils.WriteInternalErrorResponse(w, "HandleBookingStatus", err)
			return
		}
		property.IsAvailable = models.PropertyUnavailable
		property.UpdatedAt = time.Now()
		if err := h.properties.Update(r.Context(), property); err != nil {
			utils.WriteInternalErrorResponse(w, "HandleBookingStatus", err)
			return
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Message: "Booking " + req.Status,
		Success: true,
	})
}
