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

package controllers

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type AuthController struct {
	userRepository shared.UserRepository
	tokenService   shared.TokenService
}

func NewAuthController(userRepository shared.UserRepository, tokenService shared.TokenService) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// Login exchanges username and password for a bearer token. Unknown
// users, wrong passwords and deactivated accounts all get the same 401
// to avoid leaking which usernames exist.
func (c *AuthController) Login(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.LoginRequest](ctx)
	if err != nil {
		return err
	}

	user, err := c.userRepository.FindByUsername(req.Username)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(401, "invalid credentials")
		}
		return echo.NewHTTPError(500, "could not load user").WithInternal(err)
	}

	if !user.VerifyPassword(req.Password) {
		slog.Warn("failed login attempt", "username", req.Username)
		return echo.NewHTTPError(401, "invalid credentials")
	}

	if !user.IsActive {
		return echo.NewHTTPError(401, "invalid credentials")
	}

	token, expiresAt, err := c.tokenService.Issue(user)
	if err != nil {
		return echo.NewHTTPError(500, "could not issue token").WithInternal(err)
	}

	return ctx.JSON(200, dtos.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

func (c *AuthController) Me(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetSession(ctx))
}
