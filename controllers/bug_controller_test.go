package controllers

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/database/repositories"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newBugController(t *testing.T, db *gorm.DB) *BugController {
	return NewBugController(
		repositories.NewBugRepository(db),
		repositories.NewAssessmentTargetRepository(db),
		repositories.NewProjectRepository(db),
		repositories.NewBugImageRepository(db),
		newImageStore(t.TempDir()),
	)
}

func seedProjectWithTarget(t *testing.T, db *gorm.DB) (models.Project, models.AssessmentTarget) {
	project := models.Project{Name: "Engagement"}
	require.NoError(t, db.Create(&project).Error)
	target := models.AssessmentTarget{ProjectID: project.ID, Name: "Web"}
	require.NoError(t, db.Create(&target).Error)
	return project, target
}

func TestBugCreate(t *testing.T) {
	t.Run("should create a bug and bump the project timestamp", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, target := seedProjectWithTarget(t, db)

		ctx, rec := jsonContext(http.MethodPost,
			`{"targetId": `+itoa(target.ID)+`, "category": "application", "heading": "SQL Injection", "severity": "high"}`)
		shared.SetProject(ctx, project)

		h := newBugController(t, db)
		require.NoError(t, h.Create(ctx))
		assert.Equal(t, 201, rec.Code)

		var updated models.Project
		require.NoError(t, db.First(&updated, project.ID).Error)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("should keep a rename committed while the request was in flight", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, target := seedProjectWithTarget(t, db)

		ctx, rec := jsonContext(http.MethodPost,
			`{"targetId": `+itoa(target.ID)+`, "category": "application", "heading": "XSS", "severity": "medium"}`)
		shared.SetProject(ctx, project)

		// another request renames the project after the middleware
		// loaded the snapshot above
		require.NoError(t, db.Model(&models.Project{}).Where("id = ?", project.ID).Update("name", "Renamed").Error)

		h := newBugController(t, db)
		require.NoError(t, h.Create(ctx))
		assert.Equal(t, 201, rec.Code)

		var updated models.Project
		require.NoError(t, db.First(&updated, project.ID).Error)
		assert.Equal(t, "Renamed", updated.Name)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, target := seedProjectWithTarget(t, db)

		ctx, _ := jsonContext(http.MethodPost,
			`{"targetId": `+itoa(target.ID)+`, "category": "network", "heading": "X", "severity": "high"}`)
		shared.SetProject(ctx, project)

		err := newBugController(t, db).Create(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should reject a target of another project", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, _ := seedProjectWithTarget(t, db)
		_, foreignTarget := seedProjectWithTarget(t, db)

		ctx, _ := jsonContext(http.MethodPost,
			`{"targetId": `+itoa(foreignTarget.ID)+`, "category": "application", "heading": "X", "severity": "low"}`)
		shared.SetProject(ctx, project)

		err := newBugController(t, db).Create(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Code)
	})
}

func TestBugRead(t *testing.T) {
	t.Run("should not expose bugs of another project", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, _ := seedProjectWithTarget(t, db)
		foreignProject, foreignTarget := seedProjectWithTarget(t, db)

		foreignBug := models.Bug{ProjectID: foreignProject.ID, TargetID: foreignTarget.ID, Category: models.BugCategoryApplication, Heading: "Secret", Severity: models.SeverityLow}
		require.NoError(t, db.Create(&foreignBug).Error)

		ctx, _ := jsonContext(http.MethodGet, "")
		ctx.SetParamNames("bugID")
		ctx.SetParamValues(itoa(foreignBug.ID))
		shared.SetProject(ctx, project)

		err := newBugController(t, db).Read(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should reject a non numeric id", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, _ := seedProjectWithTarget(t, db)

		ctx, _ := jsonContext(http.MethodGet, "")
		ctx.SetParamNames("bugID")
		ctx.SetParamValues("abc")
		shared.SetProject(ctx, project)

		err := newBugController(t, db).Read(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestBugPatch(t *testing.T) {
	t.Run("should reject an invalid severity on patch", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, target := seedProjectWithTarget(t, db)

		bug := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "X", Severity: models.SeverityLow}
		require.NoError(t, db.Create(&bug).Error)

		ctx, _ := jsonContext(http.MethodPatch, `{"severity": "catastrophic"}`)
		ctx.SetParamNames("bugID")
		ctx.SetParamValues(itoa(bug.ID))
		shared.SetProject(ctx, project)

		err := newBugController(t, db).Patch(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)

		// the row is untouched
		var unchanged models.Bug
		require.NoError(t, db.First(&unchanged, bug.ID).Error)
		assert.Equal(t, models.SeverityLow, unchanged.Severity)
	})
}

func TestBugDelete(t *testing.T) {
	t.Run("should remove uploaded image files from disk", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		project, target := seedProjectWithTarget(t, db)

		bug := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "SQL Injection", Severity: models.SeverityHigh}
		require.NoError(t, db.Create(&bug).Error)

		store := newImageStore(t.TempDir())
		require.NoError(t, store.save("shot.png", strings.NewReader("png bytes")))
		require.NoError(t, db.Create(&models.BugImage{BugID: bug.ID, Filename: "shot.png"}).Error)

		h := NewBugController(
			repositories.NewBugRepository(db),
			repositories.NewAssessmentTargetRepository(db),
			repositories.NewProjectRepository(db),
			repositories.NewBugImageRepository(db),
			store,
		)

		ctx, rec := jsonContext(http.MethodDelete, "")
		ctx.SetParamNames("bugID")
		ctx.SetParamValues(itoa(bug.ID))
		shared.SetProject(ctx, project)

		require.NoError(t, h.Delete(ctx))
		assert.Equal(t, 204, rec.Code)

		_, err := os.Stat(store.path("shot.png"))
		assert.True(t, os.IsNotExist(err))
	})
}
