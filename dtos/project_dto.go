// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type ProjectCreateRequest struct {
	Name       string  `json:"name" validate:"required"`
	SystemName *string `json:"systemName"`
}

func (r ProjectCreateRequest) ToModel() models.Project {
	project := models.Project{
		Name: utils.SanitizeInput(r.Name),
	}
	if r.SystemName != nil {
		project.SystemName = utils.Ptr(utils.SanitizeInput(*r.SystemName))
	}
	return project
}

type ProjectPatchRequest struct {
	Name       *string `json:"name"`
	SystemName *string `json:"systemName"`
}

// ApplyToModel patches only the provided fields and reports whether
// anything changed.
func (r ProjectPatchRequest) ApplyToModel(project *models.Project) bool {
	changed := false
	if r.Name != nil {
		project.Name = utils.SanitizeInput(*r.Name)
		changed = true
	}
	if r.SystemName != nil {
		project.SystemName = utils.Ptr(utils.SanitizeInput(*r.SystemName))
		changed = true
	}
	return changed
}
