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

package controllers

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/shared"
)

func bindAndValidate[T any](ctx shared.Context) (T, error) {
	var req T
	if err := ctx.Bind(&req); err != nil {
		return req, echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return req, echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return req, nil
}

// touchProject bumps the project's modification timestamp after a write
// anywhere in its subtree. It feeds the report's updated_at field; a
// failure here never fails the request. Only the timestamp column is
// written, the project snapshot in the context may be stale by now.
func touchProject(projectRepository shared.ProjectRepository, ctx shared.Context) {
	project := shared.GetProject(ctx)
	if err := projectRepository.Touch(nil, project.ID); err != nil {
		slog.Warn("could not update project timestamp", "projectID", project.ID, "err", err)
	}
}

// bugFromContext resolves the :bugID parameter and rejects bugs that do
// not belong to the project the access middleware resolved.
func bugFromContext(ctx shared.Context, bugRepository shared.BugRepository) (models.Bug, error) {
	bugID, err := shared.ParamUint(ctx, "bugID")
	if err != nil {
		return models.Bug{}, err
	}

	bug, err := bugRepository.Read(bugID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.Bug{}, echo.NewHTTPError(404, "bug not found").WithInternal(err)
		}
		return models.Bug{}, echo.NewHTTPError(500, "could not load bug").WithInternal(err)
	}

	if bug.ProjectID != shared.GetProject(ctx).ID {
		return models.Bug{}, echo.NewHTTPError(404, "bug not found")
	}

	return bug, nil
}

func mapWriteError(err error, entity string) error {
	if database.IsNotFoundError(err) {
		return echo.NewHTTPError(404, entity+" not found").WithInternal(err)
	}
	if database.IsDuplicateKeyError(err) {
		return echo.NewHTTPError(409, entity+" already exists").WithInternal(err)
	}
	if database.IsForeignKeyViolationError(err) {
		return echo.NewHTTPError(404, "referenced entity not found").WithInternal(err)
	}
	if _, ok := err.(*echo.HTTPError); ok {
		return err
	}
	return echo.NewHTTPError(500, "could not save "+entity).WithInternal(err)
}
