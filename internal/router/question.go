package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type QuestionRouter struct {
	handler *handler.QuestionHandler
}

func NewQuestionRouter(
	handler *handler.QuestionHandler,
) *QuestionRouter {
	return &QuestionRouter{handler: handler}
}

func (qr *QuestionRouter) Register(group *gin.RouterGroup) {
	questions := group.Group("/questions")
	{
		questions.GET("", qr.handler.List)
		questions.POST("", qr.handler.Create)
		questions.GET("/:questionID", qr.handler.Get)
		questions.PUT("/:questionID", qr.handler.Update)
		questions.DELETE("/:questionID", qr.handler.Delete)
	}
}
