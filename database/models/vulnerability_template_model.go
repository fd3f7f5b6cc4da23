package models

import (
	"time"

	"github.com/labstack/echo/v4"
)

// VulnerabilityTemplate is a reusable catalog entry used to pre-fill new
// bugs. It does not belong to any project.
type VulnerabilityTemplate struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"type:text;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	Recommendations string    `json:"recommendations" gorm:"type:text"`
	Severity        *Severity `json:"severity" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (m VulnerabilityTemplate) TableName() string {
	return "vulnerability_templates"
}

func (m VulnerabilityTemplate) Validate() error {
	if m.Severity != nil && !m.Severity.Valid() {
		return echo.NewHTTPError(400, "invalid severity, must be one of: low, medium, high, critical")
	}
	return nil
}
