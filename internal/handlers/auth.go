package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"RENTEASE_BACK-END/internal/config"
	"RENTEASE_BACK-END/internal/dto"
	"RENTEASE_BACK-END/internal/middleware"
	"RENTEASE_BACK-END/internal/models"
	"RENTEASE_BACK-END/internal/store"
	"RENTEASE_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users  store.UserStore
	config *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, config: cfg}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new renter or owner account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.MessageResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Validate required fields
	if req.Name == "" || req.Email == "" || req.Password == "" || req.UserType == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Name, email, password, and userType are required")
		return
	}
	if !models.IsValidUserType(req.UserType) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "userType must be Renter or Owner")
		return
	}

	// Check if user already exists
	_, err := h.users.GetByEmail(r.Context(), req.Email)
	if err == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User already exists with this email")
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		utils.WriteInternalErrorResponse(w, "Register", err)
		return
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.WriteInternalErrorResponse(w, "Register", err)
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         utils.CapitalizeName(req.Name),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		UserType:     req.UserType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		// The unique email index closes the check-then-insert window
		if errors.Is(err, models.ErrEmailExists) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User already exists with this email")
			return
		}
		utils.WriteInternalErrorResponse(w, "Register", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{
		Message: "User registered successfully",
		Success: true,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password, returns a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		utils.WriteInternalErrorResponse(w, "Login", err)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.UserType, &h.config.JWT)
	if err != nil {
		utils.WriteInternalErrorResponse(w, "Login", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Success: true,
		Token:   token,
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Name:     user.Name,
			Email:    user.Email,
			UserType: user.UserType,
		},
	})
}

// AuthCheck returns the current user's data
// @Summary Verify session
// @Description Return the authenticated user's data based on the bearer token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AuthCheckResponse "User data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user/getuserdata [get]
func (h *AuthHandler) AuthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		utils.WriteInternalErrorResponse(w, "AuthCheck", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthCheckResponse{
		Success: true,
		Data: dto.AuthCheckData{
			ID:       user.ID.String(),
			Name:     user.Name,
			Email:    user.Email,
			UserType: user.UserType,
		},
	})
}
