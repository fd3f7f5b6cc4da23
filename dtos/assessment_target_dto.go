package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type AssessmentTargetCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r AssessmentTargetCreateRequest) ToModel(projectID uint) models.AssessmentTarget {
	return models.AssessmentTarget{
		ProjectID: projectID,
		Name:      utils.SanitizeInput(r.Name),
	}
}

type AssessmentTargetPatchRequest struct {
	Name *string `json:"name"`
}

func (r AssessmentTargetPatchRequest) ApplyToModel(target *models.AssessmentTarget) bool {
	if r.Name == nil {
		return false
	}
	target.Name = utils.SanitizeInput(*r.Name)
	return true
}
