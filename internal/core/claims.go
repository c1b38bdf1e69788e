package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId"`
	Role           Role   `json:"role"`
	jwt.RegisteredClaims
}

// gin.Context keys（由 auth middleware 寫入）
const (
	ContextUserIDKey         = "userID"
	ContextOrganizationIDKey = "organizationID"
	ContextRoleKey           = "role"
	ContextTokenIDKey        = "tokenID"
	ContextTokenExpiryKey    = "tokenExpiry"
	ContextFullNameKey       = "fullName"
)
