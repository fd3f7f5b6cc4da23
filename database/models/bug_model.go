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

import "github.com/labstack/echo/v4"

type BugCategory string

const (
	BugCategoryApplication BugCategory = "application"
	BugCategorySourceCode  BugCategory = "source-code"
)

func (c BugCategory) Valid() bool {
	return c == BugCategoryApplication || c == BugCategorySourceCode
}

type Severity string

// ordered: low < medium < high < critical
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Bug is a single vulnerability finding inside a project, bound to exactly
// one assessment target.
type Bug struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	ProjectID uint        `json:"projectId" gorm:"not null;index"`
	TargetID  uint        `json:"targetId" gorm:"not null;index"`
	Category  BugCategory `json:"category" gorm:"type:text;not null"`
	Heading   string      `json:"heading" gorm:"type:text;not null"`
	Severity  Severity    `json:"severity" gorm:"type:text;not null"`

	Description string `json:"description" gorm:"type:text"`
	// RecommendationContent is an independently maintained summary. It is
	// never reconciled with the Recommendation rows; the report aggregator
	// falls back to joining the rows only when this field is empty.
	RecommendationContent string `json:"recommendationContent" gorm:"type:text"`

	AffectedObjects []AffectedObject `json:"affectedObjects,omitempty" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
	Recommendations []Recommendation `json:"recommendations,omitempty" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
	Images          []BugImage       `json:"images,omitempty" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
	CVEInformation  []CVEInformation `json:"cveInformation,omitempty" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
}

func (m Bug) TableName() string {
	return "bugs"
}

// Validate rejects values outside the closed category and severity enums
// before they ever reach the store.
func (m Bug) Validate() error {
	if !m.Category.Valid() {
		return echo.NewHTTPError(400, "invalid bug category, must be one of: application, source-code")
	}

	if !m.Severity.Valid() {
		return echo.NewHTTPError(400, "invalid severity, must be one of: low, medium, high, critical")
	}

	return nil
}
