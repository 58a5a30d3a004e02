package handlers

import (
	"log"
	"net/http"

	"RENTEASE_BACK-END/internal/dto"
	"RENTEASE_BACK-END/internal/utils"
)

// ForgotPasswordHandler handles password reset requests. The reset flow
// itself is not built yet; the endpoint acknowledges every request so
// callers cannot probe which emails are registered.
type ForgotPasswordHandler struct{}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler instance
func NewForgotPasswordHandler() *ForgotPasswordHandler {
	return &ForgotPasswordHandler{}
}

// ForgotPassword acknowledges a password reset request
// @Summary Request password reset
// @Description Acknowledge a password reset request. No reset email is sent yet.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email address"
// @Success 200 {object} dto.MessageResponse "Request acknowledged"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /api/user/forgotpassword [post]
func (h *ForgotPasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ForgotPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	log.Printf("forgot password requested for: %s", req.Email)

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Message: "Password reset is not implemented yet. Please contact support to reset your password.",
		Success: true,
	})
}
