package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	handler *handler.EmployeeHandler
}

func NewEmployeeRouter(
	handler *handler.EmployeeHandler,
) *EmployeeRouter {
	return &EmployeeRouter{handler: handler}
}

func (er *EmployeeRouter) Register(group *gin.RouterGroup) {
	employees := group.Group("/employees")
	{
		employees.GET("", er.handler.List)
		employees.POST("", er.handler.Create)

		// CSV 匯入要排在 /:employeeID 之前註冊，避免路由衝突誤判
		employees.POST("/import", er.handler.Import)
		employees.POST("/import/preview", er.handler.PreviewImport)
		employees.GET("/import/:jobID", er.handler.GetImportJob)

		employees.GET("/:employeeID", er.handler.Get)
		employees.PUT("/:employeeID", er.handler.Update)
		employees.DELETE("/:employeeID", er.handler.Delete)
	}
}
