package router

import (
	"simpleeval/internal/middleware"

	"github.com/gin-gonic/gin"
)

// APIRouter 聚合需要登入的租戶 API，統一掛 auth 與 user middleware
type APIRouter struct {
	auth               *middleware.Auth
	user               *middleware.User
	organizationRouter *OrganizationRouter
	employeeRouter     *EmployeeRouter
	jobFunctionRouter  *JobFunctionRouter
	questionRouter     *QuestionRouter
	scheduleRouter     *ScheduleRouter
	dashboardRouter    *DashboardRouter
}

func NewAPIRouter(
	auth *middleware.Auth,
	user *middleware.User,
	organizationRouter *OrganizationRouter,
	employeeRouter *EmployeeRouter,
	jobFunctionRouter *JobFunctionRouter,
	questionRouter *QuestionRouter,
	scheduleRouter *ScheduleRouter,
	dashboardRouter *DashboardRouter,
) *APIRouter {
	return &APIRouter{
		auth:               auth,
		user:               user,
		organizationRouter: organizationRouter,
		employeeRouter:     employeeRouter,
		jobFunctionRouter:  jobFunctionRouter,
		questionRouter:     questionRouter,
		scheduleRouter:     scheduleRouter,
		dashboardRouter:    dashboardRouter,
	}
}

func (ar *APIRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api", ar.auth.Handler(), ar.user.Handler())
	{
		ar.organizationRouter.Register(api)
		ar.employeeRouter.Register(api)
		ar.jobFunctionRouter.Register(api)
		ar.questionRouter.Register(api)
		ar.scheduleRouter.Register(api)
		ar.dashboardRouter.Register(api)
	}
}
