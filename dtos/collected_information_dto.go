package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type CollectedInformationCreateRequest struct {
	Information string `json:"information" validate:"required"`
}

func (r CollectedInformationCreateRequest) ToModel(projectID uint) models.CollectedInformation {
	return models.CollectedInformation{
		ProjectID:   projectID,
		Information: utils.SanitizeInput(r.Information),
	}
}

type CollectedInformationPatchRequest struct {
	Information *string `json:"information"`
}

func (r CollectedInformationPatchRequest) ApplyToModel(info *models.CollectedInformation) bool {
	if r.Information == nil {
		return false
	}
	info.Information = utils.SanitizeInput(*r.Information)
	return true
}
