package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type ScheduleRouter struct {
	handler *handler.ScheduleHandler
}

func NewScheduleRouter(
	handler *handler.ScheduleHandler,
) *ScheduleRouter {
	return &ScheduleRouter{handler: handler}
}

func (sr *ScheduleRouter) Register(group *gin.RouterGroup) {
	schedules := group.Group("/schedules")
	{
		schedules.GET("", sr.handler.List)
		schedules.POST("", sr.handler.Create)
		// counts 需註冊在 :scheduleID 之前避免路由衝突
		schedules.GET("/counts", sr.handler.Counts)
		schedules.GET("/:scheduleID", sr.handler.Get)
		schedules.PUT("/:scheduleID", sr.handler.Update)
		schedules.DELETE("/:scheduleID", sr.handler.Delete)
		schedules.PUT("/:scheduleID/status", sr.handler.Transition)
	}
}
