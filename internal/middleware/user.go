package middleware

import (
	"simpleeval/internal/core"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/pkg/response"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type User struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	authService *service.AuthService
}

func NewUser(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	authService *service.AuthService,
) *User {
	return &User{
		logger:      logger,
		trace:       trace,
		metric:      metric,
		authService: authService,
	}
}

// Handler 確認使用者仍存在且啟用，並把顯示名稱放進 context
func (m *User) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanUserMiddleware))
		rawUID, ok := c.Get(core.ContextUserIDKey)
		if !ok {
			m.trace.ApplyTraceAttributes(span, core.TraceUserMiddlewareMeta{
				Status: "missing_user_context",
			})
			cause := cErr.Unauthorized("missing user context")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		uidStr, _ := rawUID.(string)
		oid, err := primitive.ObjectIDFromHex(uidStr)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceUserMiddlewareMeta{
				Status: "invalid_user_id",
			})
			cause := cErr.Unauthorized("invalid userID format")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		userDTO, err := m.authService.GetUserByID(ctx, oid)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceUserMiddlewareMeta{
				UserID: uidStr,
				Status: "user_check_failed",
			})
			response.AbortWithError(c, err)
			end(err)
			return
		}
		if !userDTO.IsActive {
			m.trace.ApplyTraceAttributes(span, core.TraceUserMiddlewareMeta{
				UserID:     uidStr,
				UserActive: false,
				Status:     "user_deactivated",
			})
			deactivatedErr := cErr.AccountDeactivated("account is deactivated")
			response.AbortWithError(c, deactivatedErr)
			end(deactivatedErr)
			return
		}

		// 成功
		m.trace.ApplyTraceAttributes(span, core.TraceUserMiddlewareMeta{
			UserID:     userDTO.ID,
			UserActive: true,
			Status:     "success",
		})
		c.Set(core.ContextFullNameKey, userDTO.FullName)
		end(nil)
		c.Next()
	}
}
