package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type VulnerabilityTemplateCreateRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Recommendations string  `json:"recommendations"`
	Severity        *string `json:"severity"`
}

func (r VulnerabilityTemplateCreateRequest) ToModel() models.VulnerabilityTemplate {
	template := models.VulnerabilityTemplate{
		Name:            utils.SanitizeInput(r.Name),
		Description:     utils.SanitizeInput(r.Description),
		Recommendations: utils.SanitizeInput(r.Recommendations),
	}
	if r.Severity != nil {
		template.Severity = utils.Ptr(models.Severity(*r.Severity))
	}
	return template
}

type VulnerabilityTemplatePatchRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Recommendations *string `json:"recommendations"`
	Severity        *string `json:"severity"`
}

func (r VulnerabilityTemplatePatchRequest) ApplyToModel(template *models.VulnerabilityTemplate) bool {
	changed := false
	if r.Name != nil {
		template.Name = utils.SanitizeInput(*r.Name)
		changed = true
	}
	if r.Description != nil {
		template.Description = utils.SanitizeInput(*r.Description)
		changed = true
	}
	if r.Recommendations != nil {
		template.Recommendations = utils.SanitizeInput(*r.Recommendations)
		changed = true
	}
	if r.Severity != nil {
		template.Severity = utils.Ptr(models.Severity(*r.Severity))
		changed = true
	}
	return changed
}
