package controllers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/database/repositories"
	"github.com/pentabase/pentabase/services"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportController(db *gorm.DB) *ReportController {
	return NewReportController(services.NewReportService(
		repositories.NewProjectRepository(db),
		repositories.NewAssessmentTargetRepository(db),
		repositories.NewAssessmentScopeRepository(db),
		repositories.NewCollectedInformationRepository(db),
		repositories.NewBugRepository(db),
		repositories.NewAffectedObjectRepository(db),
		repositories.NewRecommendationRepository(db),
		repositories.NewBugImageRepository(db),
		repositories.NewCVEInformationRepository(db),
	))
}

func TestReportExport(t *testing.T) {
	db := testutils.InMemoryDatabase(t)

	project := models.Project{Name: "Acme Webshop 2026"}
	require.NoError(t, db.Create(&project).Error)

	ctx, rec := jsonContext(http.MethodGet, "")
	shared.SetProject(ctx, project)

	h := newReportController(db)
	require.NoError(t, h.Export(ctx))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, `attachment; filename="acme-webshop-2026-report.json"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), `"sections_by_category"`)
}

func TestReportGet(t *testing.T) {
	db := testutils.InMemoryDatabase(t)

	project := models.Project{Name: "Plain"}
	require.NoError(t, db.Create(&project).Error)

	ctx, rec := jsonContext(http.MethodGet, "")
	shared.SetProject(ctx, project)

	h := newReportController(db)
	require.NoError(t, h.Get(ctx))

	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), `"application":[]`)
	assert.Contains(t, rec.Body.String(), `"source_code":[]`)
}
