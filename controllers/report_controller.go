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
	"fmt"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/shared"
)

type ReportController struct {
	reportService shared.ReportService
}

func NewReportController(reportService shared.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

func (c *ReportController) Get(ctx shared.Context) error {
	report, err := c.reportService.GenerateReport(shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, report)
}

// Export returns the same document with a download filename derived from
// the project name.
func (c *ReportController) Export(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	report, err := c.reportService.GenerateReport(project.ID)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s-report.json", slug.Make(project.Name))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.JSON(200, report)
}
