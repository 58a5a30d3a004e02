package dto

// CreateBookingRequest represents the request payload for booking a
// property. The renter id comes from the verified token, never from the
// body.
type CreateBookingRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Message   string `json:"message,omitempty"`
}

// HandleBookingStatusRequest represents the owner's decision on a
// pending booking
type HandleBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
