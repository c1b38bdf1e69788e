package router

import (
	"simpleeval/internal/handler"
	"simpleeval/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
	auth        *middleware.Auth
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	auth *middleware.Auth,
) *AuthRouter {
	return &AuthRouter{
		authHandler: authHandler,
		auth:        auth,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", ar.authHandler.SignUp)
		auth.POST("/signin", ar.authHandler.SignIn)
		auth.POST("/signin/provider", ar.authHandler.SignInWithProvider)
		auth.POST("/refresh", ar.authHandler.Refresh)

		// 登出需要有效 token 才知道要撤銷誰
		auth.POST("/signout", ar.auth.Handler(), ar.authHandler.SignOut)
	}
}
