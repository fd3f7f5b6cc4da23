package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/accesscontrol"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/database/repositories"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectController(t *testing.T, db *gorm.DB) *ProjectController {
	return NewProjectController(
		repositories.NewProjectRepository(db),
		repositories.NewBugRepository(db),
		repositories.NewBugImageRepository(db),
		accesscontrol.NewAccessControl(repositories.NewProjectAccessRepository(db)),
		newImageStore(t.TempDir()),
	)
}

func jsonContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProjectCreate(t *testing.T) {
	t.Run("should create and sanitize the name", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		ctx, rec := jsonContext(http.MethodPost, `{"name": "  <b>Acme</b> Webshop  "}`)
		h := newProjectController(t, db)

		require.NoError(t, h.Create(ctx))
		assert.Equal(t, 201, rec.Code)

		var project models.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
		assert.Equal(t, "&lt;b&gt;Acme&lt;/b&gt; Webshop", project.Name)
		assert.NotZero(t, project.ID)
	})

	t.Run("should fail without a name", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		ctx, _ := jsonContext(http.MethodPost, `{}`)
		h := newProjectController(t, db)

		err := h.Create(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestProjectList(t *testing.T) {
	t.Run("admins see everything", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		require.NoError(t, db.Create(&models.Project{Name: "A"}).Error)
		require.NoError(t, db.Create(&models.Project{Name: "B"}).Error)

		ctx, rec := jsonContext(http.MethodGet, "")
		shared.SetSession(ctx, models.User{ID: 1, Role: models.UserRoleAdmin})

		h := newProjectController(t, db)
		require.NoError(t, h.List(ctx))

		var projects []models.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		assert.Len(t, projects, 2)
	})

	t.Run("regular users only see granted projects", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		user := models.User{Username: "bob", Email: "bob@example.com", Role: models.UserRoleUser, IsActive: true, PasswordHash: "x"}
		require.NoError(t, db.Create(&user).Error)

		granted := models.Project{Name: "Granted"}
		hidden := models.Project{Name: "Hidden"}
		require.NoError(t, db.Create(&granted).Error)
		require.NoError(t, db.Create(&hidden).Error)
		require.NoError(t, db.Create(&models.ProjectAccess{UserID: user.ID, ProjectID: granted.ID, HasAccess: true, GrantedBy: 1}).Error)

		ctx, rec := jsonContext(http.MethodGet, "")
		shared.SetSession(ctx, user)

		h := newProjectController(t, db)
		require.NoError(t, h.List(ctx))

		var projects []models.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "Granted", projects[0].Name)
	})

	t.Run("no grants means an empty list, not an error", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		ctx, rec := jsonContext(http.MethodGet, "")
		shared.SetSession(ctx, models.User{ID: 99, Role: models.UserRoleUser})

		h := newProjectController(t, db)
		require.NoError(t, h.List(ctx))
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestProjectPatch(t *testing.T) {
	t.Run("should update only provided fields and bump the timestamp", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		project := models.Project{Name: "Before", SystemName: nil}
		require.NoError(t, db.Create(&project).Error)

		ctx, rec := jsonContext(http.MethodPatch, `{"systemName": "shop.acme.test"}`)
		shared.SetProject(ctx, project)

		h := newProjectController(t, db)
		require.NoError(t, h.Patch(ctx))
		assert.Equal(t, 200, rec.Code)

		var updated models.Project
		require.NoError(t, db.First(&updated, project.ID).Error)
		assert.Equal(t, "Before", updated.Name)
		require.NotNil(t, updated.SystemName)
		assert.Equal(t, "shop.acme.test", *updated.SystemName)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("an empty patch writes nothing", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		project := models.Project{Name: "Untouched"}
		require.NoError(t, db.Create(&project).Error)

		ctx, _ := jsonContext(http.MethodPatch, `{}`)
		shared.SetProject(ctx, project)

		h := newProjectController(t, db)
		require.NoError(t, h.Patch(ctx))

		var updated models.Project
		require.NoError(t, db.First(&updated, project.ID).Error)
		assert.Nil(t, updated.UpdatedAt)
	})
}

func TestProjectDelete(t *testing.T) {
	db := testutils.InMemoryDatabase(t)

	project := models.Project{Name: "Doomed"}
	require.NoError(t, db.Create(&project).Error)

	ctx, rec := jsonContext(http.MethodDelete, "")
	shared.SetProject(ctx, project)

	h := newProjectController(t, db)
	require.NoError(t, h.Delete(ctx))
	assert.Equal(t, 204, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestProjectDeleteRemovesImageFiles(t *testing.T) {
	db := testutils.InMemoryDatabase(t)

	project := models.Project{Name: "Doomed"}
	require.NoError(t, db.Create(&project).Error)
	target := models.AssessmentTarget{ProjectID: project.ID, Name: "Web"}
	require.NoError(t, db.Create(&target).Error)
	bug := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "XSS", Severity: models.SeverityLow}
	require.NoError(t, db.Create(&bug).Error)

	store := newImageStore(t.TempDir())
	require.NoError(t, store.save("evidence.png", strings.NewReader("png bytes")))
	require.NoError(t, db.Create(&models.BugImage{BugID: bug.ID, Filename: "evidence.png"}).Error)

	h := NewProjectController(
		repositories.NewProjectRepository(db),
		repositories.NewBugRepository(db),
		repositories.NewBugImageRepository(db),
		accesscontrol.NewAccessControl(repositories.NewProjectAccessRepository(db)),
		store,
	)

	ctx, rec := jsonContext(http.MethodDelete, "")
	shared.SetProject(ctx, project)

	require.NoError(t, h.Delete(ctx))
	assert.Equal(t, 204, rec.Code)

	_, err := os.Stat(store.path("evidence.png"))
	assert.True(t, os.IsNotExist(err))
}
