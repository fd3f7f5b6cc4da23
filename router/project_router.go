// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/controllers"
	"github.com/pentabase/pentabase/middlewares"
	"github.com/pentabase/pentabase/shared"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	authenticatedRouter AuthenticatedRouter,
	projectController *controllers.ProjectController,
	targetController *controllers.AssessmentTargetController,
	scopeController *controllers.AssessmentScopeController,
	informationController *controllers.CollectedInformationController,
	bugController *controllers.BugController,
	affectedObjectController *controllers.AffectedObjectController,
	recommendationController *controllers.RecommendationController,
	imageController *controllers.BugImageController,
	cveController *controllers.CVEInformationController,
	reportController *controllers.ReportController,
	accessControl shared.AccessControl,
	projectRepository shared.ProjectRepository,
) ProjectRouter {
	projectsRouter := authenticatedRouter.Group.Group("/projects")
	projectsRouter.GET("/", projectController.List)
	projectsRouter.POST("/", projectController.Create)

	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectRouter := projectsRouter.Group("/:projectID", middlewares.ProjectAccessMiddleware(accessControl, projectRepository))
	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Patch)
	projectRouter.DELETE("/", projectController.Delete)

	projectRouter.GET("/report/", reportController.Get)
	projectRouter.GET("/report/export/", reportController.Export)

	projectRouter.GET("/targets/", targetController.List)
	projectRouter.POST("/targets/", targetController.Create)
	projectRouter.PATCH("/targets/:targetID/", targetController.Patch)
	projectRouter.DELETE("/targets/:targetID/", targetController.Delete)

	projectRouter.GET("/scope/", scopeController.List)
	projectRouter.POST("/scope/", scopeController.Create)
	projectRouter.PATCH("/scope/:scopeID/", scopeController.Patch)
	projectRouter.DELETE("/scope/:scopeID/", scopeController.Delete)

	projectRouter.GET("/collected-information/", informationController.List)
	projectRouter.POST("/collected-information/", informationController.Create)
	projectRouter.PATCH("/collected-information/:informationID/", informationController.Patch)
	projectRouter.DELETE("/collected-information/:informationID/", informationController.Delete)

	projectRouter.GET("/bugs/", bugController.List)
	projectRouter.POST("/bugs/", bugController.Create)

	bugRouter := projectRouter.Group("/bugs/:bugID")
	bugRouter.GET("/", bugController.Read)
	bugRouter.PATCH("/", bugController.Patch)
	bugRouter.DELETE("/", bugController.Delete)

	bugRouter.GET("/affected-objects/", affectedObjectController.List)
	bugRouter.POST("/affected-objects/", affectedObjectController.Create)
	bugRouter.DELETE("/affected-objects/:objectID/", affectedObjectController.Delete)

	bugRouter.GET("/recommendations/", recommendationController.List)
	bugRouter.POST("/recommendations/", recommendationController.Create)
	bugRouter.DELETE("/recommendations/:recommendationID/", recommendationController.Delete)

	bugRouter.GET("/images/", imageController.List)
	bugRouter.POST("/images/", imageController.Upload)
	bugRouter.GET("/images/:imageID/", imageController.Download)
	bugRouter.PATCH("/images/:imageID/", imageController.Patch)
	bugRouter.DELETE("/images/:imageID/", imageController.Delete)

	bugRouter.GET("/cve-information/", cveController.List)
	bugRouter.POST("/cve-information/", cveController.Create)
	bugRouter.DELETE("/cve-information/:cveID/", cveController.Delete)

	return ProjectRouter{Group: projectRouter}
}
