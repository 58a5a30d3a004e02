package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RENTEASE_BACK-END/internal/middleware"
	"RENTEASE_BACK-END/internal/models"
	"RENTEASE_BACK-END/internal/utils"
)

func ownerRequest(method, target, body string, ownerID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(utils.SetUserContext(req.Context(), ownerID, models.UserTypeOwner))
}

func TestAddProperty(t *testing.T) {
	properties := newFakePropertyStore()
	h := NewOwnerHandler(properties, newFakeBookingStore())
	ownerID := uuid.New()

	req := ownerRequest(http.MethodPost, "/api/owner/addproperty",
		`{"propertyName":"Sea View Flat","propertyImages":["/uploads/sea.jpg"],"rent":800}`, ownerID)
	w := httptest.NewRecorder()
	h.AddProperty(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, properties.properties, 1)
	for _, p := range properties.properties {
		assert.Equal(t, ownerID, p.OwnerID)
		assert.Equal(t, "Sea View Flat", p.Name)
		assert.Equal(t, models.PropertyAvailable, p.IsAvailable, "new listings are available by default")
		assert.Equal(t, 800.0, p.Rent)
	}
}

func TestAddProperty_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"rent":800}`},
		{"blank name", `{"propertyName":"   ","rent":800}`},
		{"zero rent", `{"propertyName":"Sea View Flat","rent":0}`},
		{"negative rent", `{"propertyName":"Sea View Flat","rent":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties := newFakePropertyStore()
			h := NewOwnerHandler(properties, newFakeBookingStore())

			req := ownerRequest(http.MethodPost, "/api/owner/addproperty", tt.body, uuid.New())
			w := httptest.NewRecorder()
			h.AddProperty(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, properties.properties)
		})
	}
}

func TestUpdateProperty(t *testing.T) {
	properties := newFakePropertyStore()
	h := NewOwnerHandler(properties, newFakeBookingStore())

	property := seedProperty(t, properties, models.PropertyAvailable)

	req := ownerRequest(http.MethodPut, "/api/owner/updateproperty/"+property.ID.String(),
		`{"rent":1500,"isAvailable":"Unavailable"}`, property.OwnerID)
	w := httptest.NewRecorder()
	h.UpdateProperty(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := properties.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.Rent)
	assert.Equal(t, models.PropertyUnavailable, got.IsAvailable)
	assert.Equal(t, "Lakeside Cottage", got.Name, "unset fields are left unchanged")
}

func TestUpdateProperty_NotOwner(t *testing.T) {
	properties := newFakePropertyStore()
	h := NewOwnerHandler(properties, newFakeBookingStore())

	property := seedProperty(t, properties, models.PropertyAvailable)

	req := ownerRequest(http.MethodPut, "/api/owner/updateproperty/"+property.ID.String(),
		`{"rent":1}`, uuid.New())
	w := httptest.NewRecorder()
	h.UpdateProperty(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	got, err := properties.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, got.Rent)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	h := NewOwnerHandler(newFakePropertyStore(), newFakeBookingStore())

	req := ownerRequest(http.MethodPut, "/api/owner/updateproperty/"+uuid.NewString(),
		`{"rent":1500}`, uuid.New())
	w := httptest.NewRecorder()
	h.UpdateProperty(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedBooking(t *testing.T, bookings *fakeBookingStore, propertyID, ownerID uuid.UUID, status string) *models.Booking {
	t.Helper()
	b := &models.Booking{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		RenterID:      uuid.New(),
		OwnerID:       ownerID,
		StartDate:     time.Now(),
		EndDate:       time.Now().Add(7 * 24 * time.Hour),
		BookingStatus: status,
		PropertyName:  "Lakeside Cottage",
		Rent:          1200,
	}
	require.NoError(t, bookings.Create(context.Background(), b))
	return b
}

func TestHandleBookingStatus_Approve(t *testing.T) {
	properties := newFakePropertyStore()
	bookings := newFakeBookingStore()
	h := NewOwnerHandler(properties, bookings)

	property := seedProperty(t, properties, models.PropertyAvailable)
	booking := seedBooking(t, bookings, property.ID, property.OwnerID, models.BookingPending)

	req := ownerRequest(http.MethodPut, "/api/owner/handlebookingstatus/"+booking.ID.String(),
		`{"status":"approved"}`, property.OwnerID)
	w := httptest.NewRecorder()
	h.HandleBookingStatus(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, got.BookingStatus)

	// Approval closes the property to further bookings
	p, err := properties.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyUnavailable, p.IsAvailable)
}

func TestHandleBookingStatus_Reject(t *testing.T) {
	properties := newFakePropertyStore()
	bookings := newFakeBookingStore()
	h := NewOwnerHandler(properties, bookings)

	property := seedProperty(t, properties, models.PropertyAvailable)
	booking := seedBooking(t, bookings, property.ID, property.OwnerID, models.BookingPending)

	req := ownerRequest(http.MethodPut, "/api/owner/handlebookingstatus/"+booking.ID.String(),
		`{"status":"rejected"}`, property.OwnerID)
	w := httptest.NewRecorder()
	h.HandleBookingStatus(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, got.BookingStatus)

	// Rejection leaves the property bookable
	p, err := properties.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyAvailable, p.IsAvailable)
}

func TestHandleBookingStatus_Errors(t *testing.T) {
	properties := newFakePropertyStore()
	bookings := newFakeBookingStore()
	h := NewOwnerHandler(properties, bookings)

	property := seedProperty(t, properties, models.PropertyAvailable)
	pending := seedBooking(t, bookings, property.ID, property.OwnerID, models.BookingPending)
	handled := seedBooking(t, bookings, property.ID, property.OwnerID, models.BookingApproved)

	tests := []struct {
		name      string
		bookingID string
		body      string
		ownerID   uuid.UUID
		wantCode  int
	}{
		{"unknown booking", uuid.NewString(), `{"status":"approved"}`, property.OwnerID, http.StatusNotFound},
		{"foreign booking", pending.ID.String(), `{"status":"approved"}`, uuid.New(), http.StatusForbidden},
		{"already handled", handled.ID.String(), `{"status":"rejected"}`, property.OwnerID, http.StatusBadRequest},
		{"bad status", pending.ID.String(), `{"status":"maybe"}`, property.OwnerID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ownerRequest(http.MethodPut, "/api/owner/handlebookingstatus/"+tt.bookingID, tt.body, tt.ownerID)
			w := httptest.NewRecorder()
			h.HandleBookingStatus(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetOwnerBookings(t *testing.T) {
	properties := newFakePropertyStore()
	bookings := newFakeBookingStore()
	h := NewOwnerHandler(properties, bookings)

	property := seedProperty(t, properties, models.PropertyAvailable)
	seedBooking(t, bookings, property.ID, property.OwnerID, models.BookingPending)
	seedBooking(t, bookings, uuid.New(), uuid.New(), models.BookingPending)

	req := ownerRequest(http.MethodGet, "/api/owner/getallbookings", "", property.OwnerID)
	w := httptest.NewRecorder()
	h.GetOwnerBookings(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, property.OwnerID, resp.Data[0].OwnerID)
}

func TestGetOwnerProperties(t *testing.T) {
	properties := newFakePropertyStore()
	h := NewOwnerHandler(properties, newFakeBookingStore())

	property := seedProperty(t, properties, models.PropertyAvailable)
	seedProperty(t, properties, models.PropertyAvailable)

	req := ownerRequest(http.MethodGet, "/api/owner/getallproperties", "", property.OwnerID)
	w := httptest.NewRecorder()
	h.GetOwnerProperties(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, property.OwnerID, resp.Data[0].OwnerID)
}

func TestOwnerMiddleware_BlocksRenters(t *testing.T) {
	h := NewOwnerHandler(newFakePropertyStore(), newFakeBookingStore())
	protected := middleware.OwnerMiddleware(h.GetOwnerProperties)

	req := httptest.NewRequest(http.MethodGet, "/api/owner/getallproperties", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), models.UserTypeRenter))
	w := httptest.NewRecorder()
	protected(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
