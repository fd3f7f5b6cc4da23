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
)

type AssessmentTargetController struct {
	targetRepository  shared.AssessmentTargetRepository
	projectRepository shared.ProjectRepository
}

func NewAssessmentTargetController(targetRepository shared.AssessmentTargetRepository, projectRepository shared.ProjectRepository) *AssessmentTargetController {
	return &AssessmentTargetController{
		targetRepository:  targetRepository,
		projectRepository: projectRepository,
	}
}

func (c *AssessmentTargetController) List(ctx shared.Context) error {
	targets, err := c.targetRepository.GetByProjectID(shared.GetProject(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assessment targets").WithInternal(err)
	}
	return ctx.JSON(200, targets)
}

func (c *AssessmentTargetController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AssessmentTargetCreateRequest](ctx)
	if err != nil {
		return err
	}

	target := req.ToModel(shared.GetProject(ctx).ID)
	if err := c.targetRepository.Create(nil, &target); err != nil {
		return mapWriteError(err, "assessment target")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, target)
}

func (c *AssessmentTargetController) Patch(ctx shared.Context) error {
	target, err := c.targetFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.AssessmentTargetPatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&target) {
		if err := c.targetRepository.Save(nil, &target); err != nil {
			return mapWriteError(err, "assessment target")
		}
		touchProject(c.projectRepository, ctx)
	}

	return ctx.JSON(200, target)
}

func (c *AssessmentTargetController) Delete(ctx shared.Context) error {
	target, err := c.targetFromContext(ctx)
	if err != nil {
		return err
	}

	if err := c.targetRepository.Delete(nil, target.ID); err != nil {
		return mapWriteError(err, "assessment target")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}

func (c *AssessmentTargetController) targetFromContext(ctx shared.Context) (models.AssessmentTarget, error) {
	targetID, err := shared.ParamUint(ctx, "targetID")
	if err != nil {
		return models.AssessmentTarget{}, err
	}

	target, err := c.targetRepository.Read(targetID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.AssessmentTarget{}, echo.NewHTTPError(404, "assessment target not found").WithInternal(err)
		}
		return models.AssessmentTarget{}, echo.NewHTTPError(500, "could not load assessment target").WithInternal(err)
	}

	if target.ProjectID != shared.GetProject(ctx).ID {
		return models.AssessmentTarget{}, echo.NewHTTPError(404, "assessment target not found")
	}

	return target, nil
}
