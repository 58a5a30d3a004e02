package dto

// AddPropertyRequest represents the request payload for creating a
// listing
type AddPropertyRequest struct {
	PropertyName   string   `json:"propertyName" validate:"required"`
	PropertyImages []string `json:"propertyImages,omitempty"`
	Rent           float64  `json:"rent" validate:"required,gt=0"`
}

// UpdatePropertyRequest represents a partial update to a listing. Nil
// fields are left unchanged.
type UpdatePropertyRequest struct {
	PropertyName   *string   `json:"propertyName,omitempty"`
	PropertyImages *[]string `json:"propertyImages,omitempty"`
	Rent           *float64  `json:"rent,omitempty"`
	IsAvailable    *string   `json:"isAvailable,omitempty"`
}
