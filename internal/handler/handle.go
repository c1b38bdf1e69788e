package handler

import (
	cErr "simpleeval/internal/pkg/error"

	"simpleeval/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewAuthHandler,
	NewOrganizationHandler,
	NewEmployeeHandler,
	NewJobFunctionHandler,
	NewQuestionHandler,
	NewScheduleHandler,
	NewDashboardHandler,
	NewHealthHandler,
)

// orgIDFromContext 取出 auth middleware 寫入的組織 id
func orgIDFromContext(c *gin.Context) (primitive.ObjectID, error) {
	hexID := c.GetString(core.ContextOrganizationIDKey)
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, cErr.Unauthorized("missing organization context")
	}
	return id, nil
}

func userIDFromContext(c *gin.Context) (primitive.ObjectID, error) {
	hexID := c.GetString(core.ContextUserIDKey)
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, cErr.Unauthorized("missing user context")
	}
	return id, nil
}

func userNameFromContext(c *gin.Context) string {
	return c.GetString(core.ContextFullNameKey)
}
