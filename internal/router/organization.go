package router

import (
	"simpleeval/internal/handler"

	"github.com/gin-gonic/gin"
)

type OrganizationRouter struct {
	handler *handler.OrganizationHandler
}

func NewOrganizationRouter(
	handler *handler.OrganizationHandler,
) *OrganizationRouter {
	return &OrganizationRouter{handler: handler}
}

func (or *OrganizationRouter) Register(group *gin.RouterGroup) {
	organization := group.Group("/organization")
	{
		organization.GET("", or.handler.Get)
		organization.PUT("", or.handler.Update)
	}
}
