package dto

// MessageResponse represents a simple acknowledgment response
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// DataResponse represents a successful response carrying a payload
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
