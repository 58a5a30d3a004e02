package handlers

import (
	"net/http"

	"RENTEASE_BACK-END/internal/dto"
	"RENTEASE_BACK-END/internal/store"
	"RENTEASE_BACK-END/internal/utils"
)

// PropertiesHandler handles renter-facing property listing requests
type PropertiesHandler struct {
	properties store.PropertyStore
}

// NewPropertiesHandler creates a new PropertiesHandler instance
func NewPropertiesHandler(properties store.PropertyStore) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

// GetAllProperties lists every property currently open for booking
// @Summary List available properties
// @Description Return all properties whose availability is "Available"
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse "Available properties"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/getallproperties [get]
func (h *PropertiesHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	properties, err := h.properties.ListAvailable(r.Context())
	if err != nil {
		utils.WriteInternalErrorResponse(w, "GetAllProperties", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    properties,
	})
}
