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
	"github.com/pentabase/pentabase/shared"

	"github.com/pentabase/pentabase/dtos"
)

type BugController struct {
	bugRepository     shared.BugRepository
	targetRepository  shared.AssessmentTargetRepository
	projectRepository shared.ProjectRepository
	imageRepository   shared.BugImageRepository
	store             *imageStore
}

func NewBugController(bugRepository shared.BugRepository, targetRepository shared.AssessmentTargetRepository, projectRepository shared.ProjectRepository, imageRepository shared.BugImageRepository, store *imageStore) *BugController {
	return &BugController{
		bugRepository:     bugRepository,
		targetRepository:  targetRepository,
		projectRepository: projectRepository,
		imageRepository:   imageRepository,
		store:             store,
	}
}

func (c *BugController) List(ctx shared.Context) error {
	bugs, err := c.bugRepository.GetByProjectID(shared.GetProject(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list bugs").WithInternal(err)
	}
	return ctx.JSON(200, bugs)
}

func (c *BugController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.BugCreateRequest](ctx)
	if err != nil {
		return err
	}

	bug := req.ToModel(shared.GetProject(ctx).ID)
	if err := bug.Validate(); err != nil {
		return err
	}

	if err := c.verifyTarget(ctx, bug.TargetID); err != nil {
		return err
	}

	if err := c.bugRepository.Create(nil, &bug); err != nil {
		return mapWriteError(err, "bug")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, bug)
}

func (c *BugController) Read(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}
	return ctx.JSON(200, bug)
}

func (c *BugController) Patch(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.BugPatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&bug) {
		if err := bug.Validate(); err != nil {
			return err
		}
		if req.TargetID != nil {
			if err := c.verifyTarget(ctx, bug.TargetID); err != nil {
				return err
			}
		}
		if err := c.bugRepository.Save(nil, &bug); err != nil {
			return mapWriteError(err, "bug")
		}
		touchProject(c.projectRepository, ctx)
	}

	return ctx.JSON(200, bug)
}

func (c *BugController) Delete(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	// the rows cascade, the files on disk do not
	images, err := c.imageRepository.GetByBugID(bug.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load images").WithInternal(err)
	}

	if err := c.bugRepository.Delete(nil, bug.ID); err != nil {
		return mapWriteError(err, "bug")
	}

	c.store.removeAll(images)
	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}

// verifyTarget rejects bugs pointing at a target of another project.
func (c *BugController) verifyTarget(ctx shared.Context, targetID uint) error {
	target, err := c.targetRepository.Read(targetID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "assessment target not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load assessment target").WithInternal(err)
	}

	if target.ProjectID != shared.GetProject(ctx).ID {
		return echo.NewHTTPError(404, "assessment target not found")
	}

	return nil
}
