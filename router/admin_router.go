// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/controllers"
	"github.com/pentabase/pentabase/middlewares"
)

type AdminRouter struct {
	*echo.Group
}

// NewAdminRouter mounts user management. Everything here needs the admin
// role on top of a valid session.
func NewAdminRouter(authenticatedRouter AuthenticatedRouter, userController *controllers.UserController) AdminRouter {
	adminRouter := authenticatedRouter.Group.Group("/admin", middlewares.AdminRequired())

	adminRouter.GET("/users/", userController.List)
	adminRouter.POST("/users/", userController.Create)
	adminRouter.GET("/users/:userID/", userController.Read)
	adminRouter.PATCH("/users/:userID/", userController.Patch)
	adminRouter.DELETE("/users/:userID/", userController.Delete)

	adminRouter.GET("/users/:userID/project-access/", userController.ListProjectAccess)
	adminRouter.PUT("/users/:userID/project-access/", userController.SetProjectAccess)

	return AdminRouter{Group: adminRouter}
}
