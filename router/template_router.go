package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/controllers"
)

type TemplateRouter struct {
	*echo.Group
}

func NewTemplateRouter(authenticatedRouter AuthenticatedRouter, templateController *controllers.VulnerabilityTemplateController) TemplateRouter {
	templateRouter := authenticatedRouter.Group.Group("/vulnerability-templates")

	templateRouter.GET("/", templateController.List)
	templateRouter.POST("/", templateController.Create)
	// suggestions must be registered before the :templateID route
	templateRouter.GET("/suggestions/", templateController.Suggestions)
	templateRouter.GET("/:templateID/", templateController.Read)
	templateRouter.PATCH("/:templateID/", templateController.Patch)
	templateRouter.DELETE("/:templateID/", templateController.Delete)

	return TemplateRouter{Group: templateRouter}
}
