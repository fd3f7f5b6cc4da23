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

package models

import (
	"time"
)

// Project is the root aggregate of one assessment engagement. Deleting a
// project cascades to every child table.
type Project struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"type:text;not null"`
	SystemName *string    `json:"systemName" gorm:"type:text"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`

	Targets              []AssessmentTarget     `json:"targets,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Scopes               []AssessmentScope      `json:"scopes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CollectedInformation []CollectedInformation `json:"collectedInformation,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Bugs                 []Bug                  `json:"bugs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (m Project) TableName() string {
	return "projects"
}
