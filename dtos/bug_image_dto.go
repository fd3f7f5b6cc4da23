package dtos

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

// the image bytes arrive as a multipart upload; only the caption travels
// as JSON.
type BugImagePatchRequest struct {
	Caption *string `json:"caption"`
}

func (r BugImagePatchRequest) ApplyToModel(image *models.BugImage) bool {
	if r.Caption == nil {
		return false
	}
	image.Caption = utils.Ptr(utils.SanitizeInput(*r.Caption))
	return true
}
