// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package accesscontrol

import (
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
	"go.uber.org/fx"
)

type grantBasedAccessControl struct {
	projectAccessRepository shared.ProjectAccessRepository
}

func NewAccessControl(projectAccessRepository shared.ProjectAccessRepository) *grantBasedAccessControl {
	return &grantBasedAccessControl{
		projectAccessRepository: projectAccessRepository,
	}
}

// AccessibleProjects enumerates the granted project ids of a non-admin
// user. Admins are unrestricted; callers must check the role instead of
// calling this, an enumeration of "all projects" is never materialized.
func (ac *grantBasedAccessControl) AccessibleProjects(user models.User) ([]uint, error) {
	return ac.projectAccessRepository.AccessibleProjectIDs(user.ID)
}

// Authorize returns nil if the user may act on the project, a 403 error
// otherwise. Every project scoped operation passes through here before
// touching any entity of the project.
func (ac *grantBasedAccessControl) Authorize(user models.User, projectID uint) error {
	if user.IsAdmin() {
		return nil
	}

	accessible, err := ac.AccessibleProjects(user)
	if err != nil {
		return echo.NewHTTPError(500, "could not determine project access").WithInternal(err)
	}

	if !utils.Contains(accessible, projectID) {
		return echo.NewHTTPError(403, "access denied to this project")
	}

	return nil
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAccessControl, fx.As(new(shared.AccessControl)))),
)
