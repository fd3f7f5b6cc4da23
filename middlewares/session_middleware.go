// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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

package middlewares

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/shared"
)

// SessionMiddleware authenticates a request via its bearer token and puts
// the resolved user into the request context. Every route behind it can
// rely on shared.GetSession.
func SessionMiddleware(tokenService shared.TokenService, userRepository shared.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(401, "missing authorization header")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(401, "invalid authorization header")
			}

			userID, err := tokenService.Verify(token)
			if err != nil {
				return echo.NewHTTPError(401, "invalid or expired token").WithInternal(err)
			}

			user, err := userRepository.Read(userID)
			if err != nil {
				if database.IsNotFoundError(err) {
					return echo.NewHTTPError(401, "invalid or expired token").WithInternal(err)
				}
				return echo.NewHTTPError(500, "could not load user").WithInternal(err)
			}

			if !user.IsActive {
				return echo.NewHTTPError(401, "account is deactivated")
			}

			shared.SetSession(ctx, user)
			return next(ctx)
		}
	}
}

// AdminRequired guards the user management routes. It runs behind the
// session middleware.
func AdminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.GetSession(ctx).IsAdmin() {
				return echo.NewHTTPError(403, "admin role required")
			}
			return next(ctx)
		}
	}
}
