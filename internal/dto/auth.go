package dto

import (
	"time"

	"simpleeval/internal/core"
)

// 註冊（同時建立組織與 admin 使用者）
type SignUpDto struct {
	Email            string `json:"email" binding:"required,email"`      // 登入信箱
	Password         string `json:"password" binding:"required,min=8"`   // 密碼至少 8 碼
	FullName         string `json:"fullName" binding:"required"`         // 顯示名稱
	OrganizationName string `json:"organizationName" binding:"required"` // 組織名稱
}

// 登入
type SignInDto struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// 第三方登入（信任上游已驗證的 email）
type SignInWithProviderDto struct {
	Provider string `json:"provider" binding:"required,oneof=google microsoft"` // 上游供應商
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
}

// 以 refresh token 換發 access token
type RefreshTokenDto struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponseDto struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int64           `json:"expiresIn"` // access token 效期（秒）
	User         UserResponseDto `json:"user"`
}

type UserResponseDto struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"fullName"`
	OrganizationID string     `json:"organizationId"`
	Role           core.Role  `json:"role"`
	IsActive       bool       `json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
