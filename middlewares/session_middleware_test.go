package middlewares

import (
	"net/http"
	"net/http/httptest"
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

func newSessionTestContext(t *testing.T) (echo.Context, *gorm.DB) {
	db := testutils.InMemoryDatabase(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder()), db
}

func TestSessionMiddleware(t *testing.T) {
	tokenService := services.NewTokenService("test-secret")

	createUser := func(t *testing.T, db *gorm.DB, active bool) models.User {
		user := models.User{Username: "alice", Email: "alice@example.com", Role: models.UserRoleUser, IsActive: active, PasswordHash: "x"}
		require.NoError(t, db.Create(&user).Error)
		return user
	}

	t.Run("should put the token's user into the context", func(t *testing.T) {
		ctx, db := newSessionTestContext(t)
		user := createUser(t, db, true)

		token, _, err := tokenService.Issue(user)
		require.NoError(t, err)
		ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		mw := SessionMiddleware(tokenService, repositories.NewUserRepository(db))

		var called bool
		err = mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, user.ID, shared.GetSession(ctx).ID)
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should reject a missing authorization header", func(t *testing.T) {
		ctx, db := newSessionTestContext(t)

		mw := SessionMiddleware(tokenService, repositories.NewUserRepository(db))
		err := mw(func(ctx echo.Context) error { return nil })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		ctx, db := newSessionTestContext(t)
		user := createUser(t, db, true)

		token, _, err := services.NewTokenService("other-secret").Issue(user)
		require.NoError(t, err)
		ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		mw := SessionMiddleware(tokenService, repositories.NewUserRepository(db))
		err = mw(func(ctx echo.Context) error { return nil })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should reject a deactivated user", func(t *testing.T) {
		ctx, db := newSessionTestContext(t)
		user := createUser(t, db, false)

		token, _, err := tokenService.Issue(user)
		require.NoError(t, err)
		ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		mw := SessionMiddleware(tokenService, repositories.NewUserRepository(db))
		err = mw(func(ctx echo.Context) error { return nil })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should reject a token for a deleted user", func(t *testing.T) {
		ctx, db := newSessionTestContext(t)
		user := createUser(t, db, true)

		token, _, err := tokenService.Issue(user)
		require.NoError(t, err)
		require.NoError(t, db.Delete(&models.User{}, user.ID).Error)
		ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		mw := SessionMiddleware(tokenService, repositories.NewUserRepository(db))
		err = mw(func(ctx echo.Context) error { return nil })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})
}

func TestAdminRequired(t *testing.T) {
	t.Run("should pass an admin through", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(ctx, models.User{ID: 1, Role: models.UserRoleAdmin})

		var called bool
		err := AdminRequired()(func(ctx echo.Context) error {
			called = true
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should reject a regular user", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(ctx, models.User{ID: 1, Role: models.UserRoleUser})

		err := AdminRequired()(func(ctx echo.Context) error { return nil })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 403, httpErr.Code)
	})
}
