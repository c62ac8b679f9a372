package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reinkjet/internal/application/account/usecases"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/utils"
)

type AuthHandler struct {
	registerUC       usecases.RegisterAccountExecutor
	authenticateUC   usecases.AuthenticateAccountExecutor
	getProfileUC     usecases.GetProfileExecutor
	updateProfileUC  usecases.UpdateProfileExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterAccountExecutor,
	authenticateUC usecases.AuthenticateAccountExecutor,
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		authenticateUC:   authenticateUC,
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
		logger:           logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AuthResponse{
		Account:     result.Account,
		AccessToken: result.AccessToken,
	}, "Account registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateAccountCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", AuthResponse{
		Account:     result.Account,
		AccessToken: result.AccessToken,
	})
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		AccountID: accountID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.updateProfileUC.Execute(c.Request.Context(), req.ToCommand(accountID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// ChangePassword handles PUT /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		AccountID:       accountID.(uint),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
