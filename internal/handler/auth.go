package handler

import (
	"time"

	"simpleeval/internal/core"
	"simpleeval/internal/dto"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"
	"simpleeval/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// SignUp 註冊
// @Summary 註冊新組織與管理員帳號
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.SignUpDto true "註冊資訊"
// @Success 201 {object} dto.AuthResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.SignUpDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.SignUp(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// SignIn 登入
// @Summary 密碼登入
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.SignInDto true "登入資訊"
// @Success 200 {object} dto.AuthResponseDto
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.SignInDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.SignIn(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// SignInWithProvider 第三方登入
// @Summary 第三方登入（已驗證的上游 email）
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.SignInWithProviderDto true "登入資訊"
// @Success 200 {object} dto.AuthResponseDto
// @Failure 401 {object} map[string]string
// @Router /auth/signin/provider [post]
func (h *AuthHandler) SignInWithProvider(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.SignInWithProviderDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.SignInWithProvider(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Refresh 換發 token
// @Summary 以 refresh token 換發新的 token 對
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenDto true "refresh token"
// @Success 200 {object} dto.AuthResponseDto
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.RefreshTokenDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.RefreshToken(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// SignOut 登出
// @Summary 登出：作廢 access token 與 refresh token
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	// refresh token 可選，沒有就只做黑名單
	var req dto.RefreshTokenDto
	_ = c.ShouldBindJSON(&req)

	tokenID := c.GetString(core.ContextTokenIDKey)
	expiry := time.Unix(c.GetInt64(core.ContextTokenExpiryKey), 0)

	if err := h.authService.SignOut(ctx, tokenID, expiry, req.RefreshToken); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Signed out"})
}
