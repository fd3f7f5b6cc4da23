package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/controllers"
)

type AuthRouter struct {
	*echo.Group
}

func NewAuthRouter(apiV1Router APIV1Router, authenticatedRouter AuthenticatedRouter, authController *controllers.AuthController) AuthRouter {
	// login is the only route reachable without a token
	apiV1Router.POST("/auth/login/", authController.Login)

	authRouter := authenticatedRouter.Group.Group("/auth")
	authRouter.GET("/me/", authController.Me)

	return AuthRouter{Group: authRouter}
}
