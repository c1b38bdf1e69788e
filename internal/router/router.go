package router

import (
	docs "simpleeval/cmd/docs"
	"simpleeval/config"
	"simpleeval/internal/middleware"
	"simpleeval/internal/pkg/response"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewAuthRouter,
	NewAPIRouter,
	NewOrganizationRouter,
	NewEmployeeRouter,
	NewJobFunctionRouter,
	NewQuestionRouter,
	NewScheduleRouter,
	NewDashboardRouter,
	NewHealthRouter,
)

// 透過依賴注入將
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	authRouter *AuthRouter,
	apiRouter *APIRouter,
	healthRouter *HealthRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())
	router.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Code:        0,
			Data:        "ok",
			Message:     "success",
			Description: "service is alive",
		})
		c.Abort()
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
				docs.SwaggerInfo.BasePath = "/simpleeval/api"
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	authRouter.RegisterRoutes(router)
	apiRouter.RegisterRoutes(router)
	healthRouter.RegisterHealthRoutes(router)
	pprof.Register(router)
	return router
}
