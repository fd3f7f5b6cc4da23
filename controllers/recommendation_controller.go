package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
)

type RecommendationController struct {
	recommendationRepository shared.RecommendationRepository
	bugRepository            shared.BugRepository
	projectRepository        shared.ProjectRepository
}

func NewRecommendationController(recommendationRepository shared.RecommendationRepository, bugRepository shared.BugRepository, projectRepository shared.ProjectRepository) *RecommendationController {
	return &RecommendationController{
		recommendationRepository: recommendationRepository,
		bugRepository:            bugRepository,
		projectRepository:        projectRepository,
	}
}

func (c *RecommendationController) List(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	recommendations, err := c.recommendationRepository.GetByBugID(bug.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list recommendations").WithInternal(err)
	}
	return ctx.JSON(200, recommendations)
}

func (c *RecommendationController) Create(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.RecommendationCreateRequest](ctx)
	if err != nil {
		return err
	}

	recommendation := req.ToModel(bug.ID)
	if err := c.recommendationRepository.Create(nil, &recommendation); err != nil {
		return mapWriteError(err, "recommendation")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, recommendation)
}

func (c *RecommendationController) Delete(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	recommendationID, err := shared.ParamUint(ctx, "recommendationID")
	if err != nil {
		return err
	}

	recommendation, err := c.recommendationRepository.Read(recommendationID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "recommendation not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load recommendation").WithInternal(err)
	}
	if recommendation.BugID != bug.ID {
		return echo.NewHTTPError(404, "recommendation not found")
	}

	if err := c.recommendationRepository.Delete(nil, recommendation.ID); err != nil {
		return mapWriteError(err, "recommendation")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}
