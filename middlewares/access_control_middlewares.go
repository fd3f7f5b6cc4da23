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

package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/shared"
)

// ProjectAccessMiddleware resolves the :projectID path parameter, checks
// that the session user may touch the project and stores the loaded
// project in the request context.
func ProjectAccessMiddleware(accessControl shared.AccessControl, projectRepository shared.ProjectRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			projectID, err := shared.ParamUint(ctx, "projectID")
			if err != nil {
				return err
			}

			user := shared.GetSession(ctx)
			if err := accessControl.Authorize(user, projectID); err != nil {
				return err
			}

			project, err := projectRepository.Read(projectID)
			if err != nil {
				if database.IsNotFoundError(err) {
					return echo.NewHTTPError(404, "project not found").WithInternal(err)
				}
				return echo.NewHTTPError(500, "could not load project").WithInternal(err)
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}
