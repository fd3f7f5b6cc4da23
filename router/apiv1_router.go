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
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/cmd/pentabase/api"
	"github.com/pentabase/pentabase/middlewares"
	"github.com/pentabase/pentabase/shared"
)

type APIV1Router struct {
	*echo.Group
}

// NewAPIV1Router mounts the public /api/v1 group. Only the health route
// lives here, everything else sits behind the session middleware.
func NewAPIV1Router(srv api.Server, db shared.DB) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		status := "healthy"
		code := 200

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "unhealthy"
			code = 503
		}

		return ctx.JSON(code, echo.Map{
			"status":        status,
			"goVersion":     runtime.Version(),
			"uptimeSeconds": int(time.Since(api.StartedAt).Seconds()),
		})
	})

	return APIV1Router{Group: apiV1Router}
}

type AuthenticatedRouter struct {
	*echo.Group
}

// NewAuthenticatedRouter wraps the api group with the session middleware.
func NewAuthenticatedRouter(apiV1Router APIV1Router, tokenService shared.TokenService, userRepository shared.UserRepository) AuthenticatedRouter {
	group := apiV1Router.Group.Group("", middlewares.SessionMiddleware(tokenService, userRepository))
	return AuthenticatedRouter{Group: group}
}
