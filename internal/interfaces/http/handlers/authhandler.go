package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/auth/usecases"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type AuthHandler struct {
	signUpUseCase         *usecases.SignUpUseCase
	loginUseCase          *usecases.LoginUseCase
	refreshTokenUseCase   *usecases.RefreshTokenUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	dto                   *DTOBuilder
	jwtConfig             config.JWTConfig
	logger                logger.Interface
}

func NewAuthHandler(
	signUpUC *usecases.SignUpUseCase,
	loginUC *usecases.LoginUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	dto *DTOBuilder,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signUpUseCase:         signUpUC,
		loginUseCase:          loginUC,
		refreshTokenUseCase:   refreshTokenUC,
		changePasswordUseCase: changePasswordUC,
		dto:                   dto,
		jwtConfig:             jwtConfig,
		logger:                logger,
	}
}

type SignUpRequest struct {
	Username        string `json:"username" binding:"required" validate:"required,min=2,max=63"`
	Password        string `json:"password" binding:"required" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username   string `json:"username" binding:"required" validate:"required"`
	Password   string `json:"password" binding:"required" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" binding:"required" validate:"required"`
	NewPassword        string `json:"new_password" binding:"required" validate:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required" validate:"required,eqfield=NewPassword"`
}

// SignUp registers a new account and logs it straight in.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signUpUseCase.Execute(c.Request.Context(), usecases.SignUpCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken, false)

	utils.CreatedResponse(c, gin.H{
		"user":       h.dto.User(result.User),
		"expires_in": result.ExpiresIn,
	}, "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken, req.RememberMe)

	utils.SuccessResponse(c, http.StatusOK, "logged in", gin.H{
		"user":       h.dto.User(result.User),
		"expires_in": result.ExpiresIn,
	})
}

// Logout clears the auth cookies. Tokens are stateless, so there is
// nothing to revoke server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	result, err := h.refreshTokenUseCase.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: refreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	utils.SetAuthCookies(c, result.AccessToken, refreshToken, accessMaxAge, h.refreshMaxAge(false))

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"expires_in": int64(accessMaxAge),
	})
}

// ChangePassword rotates the current user's credential. The session stays
// valid: tokens are stateless and unaffected by the password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string, rememberMe bool) {
	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	utils.SetAuthCookies(c, accessToken, refreshToken, accessMaxAge, h.refreshMaxAge(rememberMe))
}

func (h *AuthHandler) refreshMaxAge(rememberMe bool) int {
	days := h.jwtConfig.RefreshExpDays
	if rememberMe {
		days *= 4
	}
	return days * 24 * 60 * 60
}
