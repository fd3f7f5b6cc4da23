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

type VulnerabilityTemplateController struct {
	templateRepository shared.VulnerabilityTemplateRepository
}

func NewVulnerabilityTemplateController(templateRepository shared.VulnerabilityTemplateRepository) *VulnerabilityTemplateController {
	return &VulnerabilityTemplateController{templateRepository: templateRepository}
}

func (c *VulnerabilityTemplateController) List(ctx shared.Context) error {
	templates, err := c.templateRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list vulnerability templates").WithInternal(err)
	}
	return ctx.JSON(200, templates)
}

// Suggestions powers the heading autocomplete in the bug editor.
func (c *VulnerabilityTemplateController) Suggestions(ctx shared.Context) error {
	query := ctx.QueryParam("q")
	if query == "" {
		return ctx.JSON(200, []models.VulnerabilityTemplate{})
	}

	templates, err := c.templateRepository.SearchByName(query)
	if err != nil {
		return echo.NewHTTPError(500, "could not search vulnerability templates").WithInternal(err)
	}
	return ctx.JSON(200, templates)
}

func (c *VulnerabilityTemplateController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.VulnerabilityTemplateCreateRequest](ctx)
	if err != nil {
		return err
	}

	template := req.ToModel()
	if err := template.Validate(); err != nil {
		return err
	}

	if err := c.templateRepository.Create(nil, &template); err != nil {
		return mapWriteError(err, "vulnerability template")
	}

	return ctx.JSON(201, template)
}

func (c *VulnerabilityTemplateController) Read(ctx shared.Context) error {
	template, err := c.templateFromContext(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, template)
}

func (c *VulnerabilityTemplateController) Patch(ctx shared.Context) error {
	template, err := c.templateFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.VulnerabilityTemplatePatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&template) {
		if err := template.Validate(); err != nil {
			return err
		}
		if err := c.templateRepository.Save(nil, &template); err != nil {
			return mapWriteError(err, "vulnerability template")
		}
	}

	return ctx.JSON(200, template)
}

func (c *VulnerabilityTemplateController) Delete(ctx shared.Context) error {
	template, err := c.templateFromContext(ctx)
	if err != nil {
		return err
	}

	if err := c.templateRepository.Delete(nil, template.ID); err != nil {
		return mapWriteError(err, "vulnerability template")
	}

	return ctx.NoContent(204)
}

func (c *VulnerabilityTemplateController) templateFromContext(ctx shared.Context) (models.VulnerabilityTemplate, error) {
	templateID, err := shared.ParamUint(ctx, "templateID")
	if err != nil {
		return models.VulnerabilityTemplate{}, err
	}

	template, err := c.templateRepository.Read(templateID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.VulnerabilityTemplate{}, echo.NewHTTPError(404, "vulnerability template not found").WithInternal(err)
		}
		return models.VulnerabilityTemplate{}, echo.NewHTTPError(500, "could not load vulnerability template").WithInternal(err)
	}

	return template, nil
}
