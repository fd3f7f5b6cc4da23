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
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
)

// UserController backs the admin only user management routes.
type UserController struct {
	userRepository          shared.UserRepository
	projectRepository       shared.ProjectRepository
	projectAccessRepository shared.ProjectAccessRepository
}

func NewUserController(userRepository shared.UserRepository, projectRepository shared.ProjectRepository, projectAccessRepository shared.ProjectAccessRepository) *UserController {
	return &UserController{
		userRepository:          userRepository,
		projectRepository:       projectRepository,
		projectAccessRepository: projectAccessRepository,
	}
}

func (c *UserController) List(ctx shared.Context) error {
	users, err := c.userRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list users").WithInternal(err)
	}
	return ctx.JSON(200, users)
}

func (c *UserController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.UserCreateRequest](ctx)
	if err != nil {
		return err
	}

	admin := shared.GetSession(ctx)
	user, err := req.ToModel(utils.Ptr(admin.ID))
	if err != nil {
		return echo.NewHTTPError(500, "could not hash password").WithInternal(err)
	}
	if err := user.Validate(); err != nil {
		return err
	}

	if err := c.userRepository.Create(nil, &user); err != nil {
		return mapWriteError(err, "user")
	}

	return ctx.JSON(201, user)
}

func (c *UserController) Read(ctx shared.Context) error {
	user, err := c.userFromContext(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, user)
}

func (c *UserController) Patch(ctx shared.Context) error {
	user, err := c.userFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.UserPatchRequest](ctx)
	if err != nil {
		return err
	}

	changed, err := req.ApplyToModel(&user)
	if err != nil {
		return echo.NewHTTPError(500, "could not hash password").WithInternal(err)
	}
	if changed {
		if err := user.Validate(); err != nil {
			return err
		}
		if err := c.userRepository.Save(nil, &user); err != nil {
			return mapWriteError(err, "user")
		}
	}

	return ctx.JSON(200, user)
}

func (c *UserController) Delete(ctx shared.Context) error {
	user, err := c.userFromContext(ctx)
	if err != nil {
		return err
	}

	if user.ID == shared.GetSession(ctx).ID {
		return echo.NewHTTPError(400, "cannot delete your own account")
	}

	if err := c.userRepository.Delete(nil, user.ID); err != nil {
		return mapWriteError(err, "user")
	}

	return ctx.NoContent(204)
}

func (c *UserController) ListProjectAccess(ctx shared.Context) error {
	user, err := c.userFromContext(ctx)
	if err != nil {
		return err
	}

	grants, err := c.projectAccessRepository.GetByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list project access").WithInternal(err)
	}
	return ctx.JSON(200, grants)
}

// SetProjectAccess creates or updates the single grant row of one
// (user, project) pair.
func (c *UserController) SetProjectAccess(ctx shared.Context) error {
	user, err := c.userFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.ProjectAccessRequest](ctx)
	if err != nil {
		return err
	}

	if _, err := c.projectRepository.Read(req.ProjectID); err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}

	admin := shared.GetSession(ctx)

	grant, err := c.projectAccessRepository.FindByUserAndProject(user.ID, req.ProjectID)
	if err != nil {
		if !database.IsNotFoundError(err) {
			return echo.NewHTTPError(500, "could not load project access").WithInternal(err)
		}
		grant = models.ProjectAccess{
			UserID:    user.ID,
			ProjectID: req.ProjectID,
			HasAccess: req.HasAccess,
			GrantedBy: admin.ID,
		}
		if err := c.projectAccessRepository.Create(nil, &grant); err != nil {
			return mapWriteError(err, "project access")
		}
		return ctx.JSON(201, grant)
	}

	grant.HasAccess = req.HasAccess
	grant.GrantedBy = admin.ID
	if err := c.projectAccessRepository.Save(nil, &grant); err != nil {
		return mapWriteError(err, "project access")
	}

	return ctx.JSON(200, grant)
}

func (c *UserController) userFromContext(ctx shared.Context) (models.User, error) {
	userID, err := shared.ParamUint(ctx, "userID")
	if err != nil {
		return models.User{}, err
	}

	user, err := c.userRepository.Read(userID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.User{}, echo.NewHTTPError(404, "user not found").WithInternal(err)
		}
		return models.User{}, echo.NewHTTPError(500, "could not load user").WithInternal(err)
	}

	return user, nil
}
