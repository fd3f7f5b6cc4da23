package shared

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
)

// the session middleware stores the authenticated user under this key,
// the project access middleware stores the resolved project.
const (
	sessionKey = "session"
	projectKey = "project"
)

func SetSession(ctx Context, user models.User) {
	ctx.Set(sessionKey, user)
}

func GetSession(ctx Context) models.User {
	user, ok := ctx.Get(sessionKey).(models.User)
	if !ok {
		// the session middleware guarantees a user on every authenticated
		// route. Reaching this is a programming error, not a request error.
		panic("no session user in context - is the session middleware registered?")
	}
	return user
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set(projectKey, project)
}

func GetProject(ctx Context) models.Project {
	project, ok := ctx.Get(projectKey).(models.Project)
	if !ok {
		panic("no project in context - is the project access middleware registered?")
	}
	return project
}

// ParamUint parses a numeric path parameter. Returns a 400 error on
// anything that is not a positive integer.
func ParamUint(ctx Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid "+name).WithInternal(err)
	}
	return uint(id), nil
}
