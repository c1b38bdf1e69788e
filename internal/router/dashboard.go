package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type DashboardRouter struct {
	handler *handler.DashboardHandler
}

func NewDashboardRouter(
	handler *handler.DashboardHandler,
) *DashboardRouter {
	return &DashboardRouter{handler: handler}
}

func (dr *DashboardRouter) Register(group *gin.RouterGroup) {
	dashboard := group.Group("/dashboard")
	{
		dashboard.GET("/stats", dr.handler.Stats)
		dashboard.GET("/activities", dr.handler.Activities)
	}
}
