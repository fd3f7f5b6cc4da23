package accesscontrol

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/shared"
	"github.com/stretchr/testify/assert"
)

// embeds the interface so only the method under test needs a body
type projectAccessRepositoryFake struct {
	shared.ProjectAccessRepository
	ids []uint
	err error
}

func (f *projectAccessRepositoryFake) AccessibleProjectIDs(userID uint) ([]uint, error) {
	return f.ids, f.err
}

func TestAuthorize(t *testing.T) {
	t.Run("admin is unrestricted", func(t *testing.T) {
		// a nil repository would panic if the admin path touched it
		ac := grantBasedAccessControl{projectAccessRepository: nil}
		admin := models.User{ID: 1, Role: models.UserRoleAdmin}

		assert.NoError(t, ac.Authorize(admin, 42))
	})

	t.Run("granted user passes", func(t *testing.T) {
		ac := grantBasedAccessControl{projectAccessRepository: &projectAccessRepositoryFake{ids: []uint{7, 42}}}
		user := models.User{ID: 2, Role: models.UserRoleUser}

		assert.NoError(t, ac.Authorize(user, 42))
	})

	t.Run("user without grant gets 403", func(t *testing.T) {
		ac := grantBasedAccessControl{projectAccessRepository: &projectAccessRepositoryFake{ids: []uint{7}}}
		user := models.User{ID: 2, Role: models.UserRoleUser}

		err := ac.Authorize(user, 42)

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 403, httpErr.Code)
	})
}
