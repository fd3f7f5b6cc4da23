package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type CVEInformationController struct {
	cveRepository     shared.CVEInformationRepository
	bugRepository     shared.BugRepository
	projectRepository shared.ProjectRepository
}

func NewCVEInformationController(cveRepository shared.CVEInformationRepository, bugRepository shared.BugRepository, projectRepository shared.ProjectRepository) *CVEInformationController {
	return &CVEInformationController{
		cveRepository:     cveRepository,
		bugRepository:     bugRepository,
		projectRepository: projectRepository,
	}
}

func (c *CVEInformationController) List(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	cves, err := c.cveRepository.GetByBugID(bug.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list CVE information").WithInternal(err)
	}
	return ctx.JSON(200, cves)
}

func (c *CVEInformationController) Create(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.CVEInformationCreateRequest](ctx)
	if err != nil {
		return err
	}

	cve := req.ToModel(bug.ID)
	if err := c.cveRepository.Create(nil, &cve); err != nil {
		return mapWriteError(err, "CVE information")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, cve)
}

func (c *CVEInformationController) Delete(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	cveID, err := shared.ParamUint(ctx, "cveID")
	if err != nil {
		return err
	}

	cve, err := c.cveRepository.Read(cveID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "CVE information not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load CVE information").WithInternal(err)
	}
	if cve.BugID != bug.ID {
		return echo.NewHTTPError(404, "CVE information not found")
	}

	if err := c.cveRepository.Delete(nil, cve.ID); err != nil {
		return mapWriteError(err, "CVE information")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}
