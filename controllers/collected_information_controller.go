package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type CollectedInformationController struct {
	informationRepository shared.CollectedInformationRepository
	projectRepository     shared.ProjectRepository
}

func NewCollectedInformationController(informationRepository shared.CollectedInformationRepository, projectRepository shared.ProjectRepository) *CollectedInformationController {
	return &CollectedInformationController{
		informationRepository: informationRepository,
		projectRepository:     projectRepository,
	}
}

func (c *CollectedInformationController) List(ctx shared.Context) error {
	information, err := c.informationRepository.GetByProjectID(shared.GetProject(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list collected information").WithInternal(err)
	}
	return ctx.JSON(200, information)
}

func (c *CollectedInformationController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.CollectedInformationCreateRequest](ctx)
	if err != nil {
		return err
	}

	info := req.ToModel(shared.GetProject(ctx).ID)
	if err := c.informationRepository.Create(nil, &info); err != nil {
		return mapWriteError(err, "collected information")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, info)
}

func (c *CollectedInformationController) Patch(ctx shared.Context) error {
	info, err := c.informationFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.CollectedInformationPatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&info) {
		if err := c.informationRepository.Save(nil, &info); err != nil {
			return mapWriteError(err, "collected information")
		}
		touchProject(c.projectRepository, ctx)
	}

	return ctx.JSON(200, info)
}

func (c *CollectedInformationController) Delete(ctx shared.Context) error {
	info, err := c.informationFromContext(ctx)
	if err != nil {
		return err
	}

	if err := c.informationRepository.Delete(nil, info.ID); err != nil {
		return mapWriteError(err, "collected information")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}

func (c *CollectedInformationController) informationFromContext(ctx shared.Context) (models.CollectedInformation, error) {
	infoID, err := shared.ParamUint(ctx, "informationID")
	if err != nil {
		return models.CollectedInformation{}, err
	}

	info, err := c.informationRepository.Read(infoID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.CollectedInformation{}, echo.NewHTTPError(404, "collected information not found").WithInternal(err)
		}
		return models.CollectedInformation{}, echo.NewHTTPError(500, "could not load collected information").WithInternal(err)
	}

	if info.ProjectID != shared.GetProject(ctx).ID {
		return models.CollectedInformation{}, echo.NewHTTPError(404, "collected information not found")
	}

	return info, nil
}
