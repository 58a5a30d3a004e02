package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RENTEASE_BACK-END/internal/models"
	"RENTEASE_BACK-END/internal/utils"
)

func TestGetAllProperties_OnlyAvailable(t *testing.T) {
	properties := newFakePropertyStore()
	h := NewPropertiesHandler(properties)

	seedProperty(t, properties, models.PropertyAvailable)
	seedProperty(t, properties, models.PropertyUnavailable)
	seedProperty(t, properties, models.PropertyAvailable)

	req := httptest.NewRequest(http.MethodGet, "/api/user/getallproperties", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), models.UserTypeRenter))
	w := httptest.NewRecorder()
	h.GetAllProperties(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	for _, p := range resp.Data {
		assert.Equal(t, models.PropertyAvailable, p.IsAvailable)
	}
}

func TestGetAllProperties_Empty(t *testing.T) {
	h := NewPropertiesHandler(newFakePropertyStore())

	req := httptest.NewRequest(http.MethodGet, "/api/user/getallproperties", nil)
	w := httptest.NewRecorder()
	h.GetAllProperties(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Empty result is an empty array, not null
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetAllProperties_StoreFailure(t *testing.T) {
	properties := newFakePropertyStore()
	properties.forcedErr = assert.AnError
	h := NewPropertiesHandler(properties)

	req := httptest.NewRequest(http.MethodGet, "/api/user/getallproperties", nil)
	w := httptest.NewRecorder()
	h.GetAllProperties(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
