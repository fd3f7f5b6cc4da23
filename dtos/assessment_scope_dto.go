package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type AssessmentScopeCreateRequest struct {
	Subject string `json:"subject" validate:"required"`
	Info    string `json:"info" validate:"required"`
}

func (r AssessmentScopeCreateRequest) ToModel(projectID uint) models.AssessmentScope {
	return models.AssessmentScope{
		ProjectID: projectID,
		Subject:   utils.SanitizeInput(r.Subject),
		Info:      utils.SanitizeInput(r.Info),
	}
}

type AssessmentScopePatchRequest struct {
	Subject *string `json:"subject"`
	Info    *string `json:"info"`
}

func (r AssessmentScopePatchRequest) ApplyToModel(scope *models.AssessmentScope) bool {
	changed := false
	if r.Subject != nil {
		scope.Subject = utils.SanitizeInput(*r.Subject)
		changed = true
	}
	if r.Info != nil {
		scope.Info = utils.SanitizeInput(*r.Info)
		changed = true
	}
	return changed
}
