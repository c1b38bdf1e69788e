package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type JobFunctionRouter struct {
	handler *handler.JobFunctionHandler
}

func NewJobFunctionRouter(
	handler *handler.JobFunctionHandler,
) *JobFunctionRouter {
	return &JobFunctionRouter{handler: handler}
}

func (jr *JobFunctionRouter) Register(group *gin.RouterGroup) {
	jobFunctions := group.Group("/job-functions")
	{
		jobFunctions.GET("", jr.handler.List)
		jobFunctions.POST("", jr.handler.Create)
		jobFunctions.GET("/:jobFunctionID", jr.handler.Get)
		jobFunctions.GET("/:jobFunctionID/schedules", jr.handler.Schedules)
		jobFunctions.PUT("/:jobFunctionID", jr.handler.Update)
		jobFunctions.DELETE("/:jobFunctionID", jr.handler.Delete)
	}
}
