package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/database/repositories"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/services"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func loginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, active bool) models.User {
	user := models.User{Username: username, Email: username + "@example.com", Role: models.UserRoleUser, IsActive: active}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestLogin(t *testing.T) {
	tokenService := services.NewTokenService("test-secret")

	t.Run("should return a working token for valid credentials", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		user := createTestUser(t, db, "alice", "correct horse battery", true)

		ctx, rec := loginContext(t, `{"username": "alice", "password": "correct horse battery"}`)
		h := NewAuthController(repositories.NewUserRepository(db), tokenService)

		require.NoError(t, h.Login(ctx))
		assert.Equal(t, 200, rec.Code)

		var resp dtos.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotContains(t, rec.Body.String(), "passwordHash")

		userID, err := tokenService.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		createTestUser(t, db, "alice", "correct horse battery", true)

		ctx, _ := loginContext(t, `{"username": "alice", "password": "wrong"}`)
		h := NewAuthController(repositories.NewUserRepository(db), tokenService)

		err := h.Login(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should reject an unknown user with the same message", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		ctx, _ := loginContext(t, `{"username": "nobody", "password": "whatever"}`)
		h := NewAuthController(repositories.NewUserRepository(db), tokenService)

		err := h.Login(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
		assert.Equal(t, "invalid credentials", httpErr.Message)
	})

	t.Run("should reject a deactivated account", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)
		createTestUser(t, db, "alice", "correct horse battery", false)

		ctx, _ := loginContext(t, `{"username": "alice", "password": "correct horse battery"}`)
		h := NewAuthController(repositories.NewUserRepository(db), tokenService)

		err := h.Login(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should fail on a missing password field", func(t *testing.T) {
		db := testutils.InMemoryDatabase(t)

		ctx, _ := loginContext(t, `{"username": "alice"}`)
		h := NewAuthController(repositories.NewUserRepository(db), tokenService)

		err := h.Login(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestMe(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	shared.SetSession(ctx, models.User{ID: 7, Username: "alice"})

	h := NewAuthController(nil, nil)
	require.NoError(t, h.Me(ctx))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}
