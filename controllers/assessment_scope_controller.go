package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type AssessmentScopeController struct {
	scopeRepository   shared.AssessmentScopeRepository
	projectRepository shared.ProjectRepository
}

func NewAssessmentScopeController(scopeRepository shared.AssessmentScopeRepository, projectRepository shared.ProjectRepository) *AssessmentScopeController {
	return &AssessmentScopeController{
		scopeRepository:   scopeRepository,
		projectRepository: projectRepository,
	}
}

func (c *AssessmentScopeController) List(ctx shared.Context) error {
	scopes, err := c.scopeRepository.GetByProjectID(shared.GetProject(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list scope entries").WithInternal(err)
	}
	return ctx.JSON(200, scopes)
}

func (c *AssessmentScopeController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AssessmentScopeCreateRequest](ctx)
	if err != nil {
		return err
	}

	scope := req.ToModel(shared.GetProject(ctx).ID)
	if err := c.scopeRepository.Create(nil, &scope); err != nil {
		return mapWriteError(err, "scope entry")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, scope)
}

func (c *AssessmentScopeController) Patch(ctx shared.Context) error {
	scope, err := c.scopeFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.AssessmentScopePatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&scope) {
		if err := c.scopeRepository.Save(nil, &scope); err != nil {
			return mapWriteError(err, "scope entry")
		}
		touchProject(c.projectRepository, ctx)
	}

	return ctx.JSON(200, scope)
}

func (c *AssessmentScopeController) Delete(ctx shared.Context) error {
	scope, err := c.scopeFromContext(ctx)
	if err != nil {
		return err
	}

	if err := c.scopeRepository.Delete(nil, scope.ID); err != nil {
		return mapWriteError(err, "scope entry")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}

func (c *AssessmentScopeController) scopeFromContext(ctx shared.Context) (models.AssessmentScope, error) {
	scopeID, err := shared.ParamUint(ctx, "scopeID")
	if err != nil {
		return models.AssessmentScope{}, err
	}

	scope, err := c.scopeRepository.Read(scopeID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.AssessmentScope{}, echo.NewHTTPError(404, "scope entry not found").WithInternal(err)
		}
		return models.AssessmentScope{}, echo.NewHTTPError(500, "could not load scope entry").WithInternal(err)
	}

	if scope.ProjectID != shared.GetProject(ctx).ID {
		return models.AssessmentScope{}, echo.NewHTTPError(404, "scope entry not found")
	}

	return scope, nil
}
