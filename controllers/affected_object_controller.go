package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type AffectedObjectController struct {
	affectedObjectRepository shared.AffectedObjectRepository
	bugRepository            shared.BugRepository
	projectRepository        shared.ProjectRepository
}

func NewAffectedObjectController(affectedObjectRepository shared.AffectedObjectRepository, bugRepository shared.BugRepository, projectRepository shared.ProjectRepository) *AffectedObjectController {
	return &AffectedObjectController{
		affectedObjectRepository: affectedObjectRepository,
		bugRepository:            bugRepository,
		projectRepository:        projectRepository,
	}
}

func (c *AffectedObjectController) List(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	objects, err := c.affectedObjectRepository.GetByBugID(bug.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list affected objects").WithInternal(err)
	}
	return ctx.JSON(200, objects)
}

func (c *AffectedObjectController) Create(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.AffectedObjectCreateRequest](ctx)
	if err != nil {
		return err
	}

	object := req.ToModel(bug.ID)
	if err := c.affectedObjectRepository.Create(nil, &object); err != nil {
		return mapWriteError(err, "affected object")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, object)
}

func (c *AffectedObjectController) Delete(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	objectID, err := shared.ParamUint(ctx, "objectID")
	if err != nil {
		return err
	}

	object, err := c.affectedObjectRepository.Read(objectID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "affected object not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load affected object").WithInternal(err)
	}
	if object.BugID != bug.ID {
		return echo.NewHTTPError(404, "affected object not found")
	}

	if err := c.affectedObjectRepository.Delete(nil, object.ID); err != nil {
		return mapWriteError(err, "affected object")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}
