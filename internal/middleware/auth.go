package middleware

import (
	"strings"

	"simpleeval/internal/core"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(logger *zap.Logger, trace *telemetry.Trace, authService *service.AuthService) *Auth {
	return &Auth{logger: logger, trace: trace, authService: authService}
}

// Handler 驗證 Bearer token：簽章、效期、登出黑名單，通過後把身份寫入 context
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		authorization := c.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{Status: "missing_token"})
			err := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, err)
			end(err)
			return
		}
		tokenString := strings.TrimPrefix(authorization, "Bearer ")

		claims, err := m.authService.ParseToken(tokenString)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{Status: "invalid_token"})
			response.AbortWithError(c, err)
			end(err)
			return
		}

		blacklisted, err := m.authService.IsTokenBlacklisted(ctx, claims.ID)
		if err != nil {
			// 黑名單查不到狀態時放行，登出只是輔助防線
			m.logger.Warn("token blacklist check failed", zap.Error(err))
		}
		if blacklisted {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{
				UserID: claims.UserID,
				Status: "token_revoked",
			})
			revokedErr := cErr.InvalidSession("token has been revoked")
			response.AbortWithError(c, revokedErr)
			end(revokedErr)
			return
		}

		c.Set(core.ContextUserIDKey, claims.UserID)
		c.Set(core.ContextOrganizationIDKey, claims.OrganizationID)
		c.Set(core.ContextRoleKey, string(claims.Role))
		c.Set(core.ContextTokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(core.ContextTokenExpiryKey, claims.ExpiresAt.Unix())
		}

		m.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{
			UserID:         claims.UserID,
			OrganizationID: claims.OrganizationID,
			Status:         "success",
		})
		end(nil)
		c.Next()
	}
}
