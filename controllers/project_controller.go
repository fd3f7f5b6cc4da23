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

package controllers

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
)

type ProjectController struct {
	projectRepository shared.ProjectRepository
	bugRepository     shared.BugRepository
	imageRepository   shared.BugImageRepository
	accessControl     shared.AccessControl
	store             *imageStore
}

func NewProjectController(projectRepository shared.ProjectRepository, bugRepository shared.BugRepository, imageRepository shared.BugImageRepository, accessControl shared.AccessControl, store *imageStore) *ProjectController {
	return &ProjectController{
		projectRepository: projectRepository,
		bugRepository:     bugRepository,
		imageRepository:   imageRepository,
		accessControl:     accessControl,
		store:             store,
	}
}

// List returns every project for admins and only the granted ones for
// regular users.
func (c *ProjectController) List(ctx shared.Context) error {
	user := shared.GetSession(ctx)

	if user.IsAdmin() {
		projects, err := c.projectRepository.All()
		if err != nil {
			return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
		}
		return ctx.JSON(200, projects)
	}

	ids, err := c.accessControl.AccessibleProjects(user)
	if err != nil {
		return err
	}

	projects, err := c.projectRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return ctx.JSON(200, projects)
}

func (c *ProjectController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ProjectCreateRequest](ctx)
	if err != nil {
		return err
	}

	project := req.ToModel()
	if err := c.projectRepository.Create(nil, &project); err != nil {
		return mapWriteError(err, "project")
	}

	return ctx.JSON(201, project)
}

// Read returns the project the access middleware already loaded.
func (c *ProjectController) Read(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetProject(ctx))
}

func (c *ProjectController) Patch(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ProjectPatchRequest](ctx)
	if err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	if req.ApplyToModel(&project) {
		now := time.Now()
		project.UpdatedAt = &now
		if err := c.projectRepository.Save(nil, &project); err != nil {
			return mapWriteError(err, "project")
		}
	}

	return ctx.JSON(200, project)
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	// collect the image files before the cascade wipes their rows
	bugs, err := c.bugRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load bugs").WithInternal(err)
	}
	images, err := c.imageRepository.GetByBugIDs(utils.Map(bugs, func(b models.Bug) uint { return b.ID }))
	if err != nil {
		return echo.NewHTTPError(500, "could not load images").WithInternal(err)
	}

	if err := c.projectRepository.Delete(nil, project.ID); err != nil {
		return mapWriteError(err, "project")
	}

	c.store.removeAll(images)
	return ctx.NoContent(204)
}
