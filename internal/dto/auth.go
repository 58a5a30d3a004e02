package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required,oneof=Renter Owner"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents the request payload for the forgot
// password endpoint
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is the non-sensitive user projection returned after
// login. The password hash is never included.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// AuthCheckData is the user projection returned by the auth check
// endpoint. The id field keeps its legacy "_id" name for frontend
// compatibility.
type AuthCheckData struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// AuthCheckResponse represents the response of the auth check endpoint
type AuthCheckResponse struct {
	Success bool          `json:"success"`
	Data    AuthCheckData `json:"data"`
}
