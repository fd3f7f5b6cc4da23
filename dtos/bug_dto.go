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

type BugCreateRequest struct {
	TargetID uint   `json:"targetId" validate:"required"`
	Category string `json:"category" validate:"required"`
	Heading  string `json:"heading" validate:"required"`
	Severity string `json:"severity" validate:"required"`

	Description           string `json:"description"`
	RecommendationContent string `json:"recommendationContent"`
}

func (r BugCreateRequest) ToModel(projectID uint) models.Bug {
	return models.Bug{
		ProjectID:             projectID,
		TargetID:              r.TargetID,
		Category:              models.BugCategory(r.Category),
		Heading:               utils.SanitizeInput(r.Heading),
		Severity:              models.Severity(r.Severity),
		Description:           utils.SanitizeInput(r.Description),
		RecommendationContent: utils.SanitizeInput(r.RecommendationContent),
	}
}

type BugPatchRequest struct {
	TargetID              *uint   `json:"targetId"`
	Category              *string `json:"category"`
	Heading               *string `json:"heading"`
	Severity              *string `json:"severity"`
	Description           *string `json:"description"`
	RecommendationContent *string `json:"recommendationContent"`
}

func (r BugPatchRequest) ApplyToModel(bug *models.Bug) bool {
	changed := false
	if r.TargetID != nil {
		bug.TargetID = *r.TargetID
		changed = true
	}
	if r.Category != nil {
		bug.Category = models.BugCategory(*r.Category)
		changed = true
	}
	if r.Heading != nil {
		bug.Heading = utils.SanitizeInput(*r.Heading)
		changed = true
	}
	if r.Severity != nil {
		bug.Severity = models.Severity(*r.Severity)
		changed = true
	}
	if r.Description != nil {
		bug.Description = utils.SanitizeInput(*r.Description)
		changed = true
	}
	if r.RecommendationContent != nil {
		bug.RecommendationContent = utils.SanitizeInput(*r.RecommendationContent)
		changed = true
	}
	return changed
}

type AffectedObjectCreateRequest struct {
	ObjectURL string `json:"objectUrl" validate:"required"`
}

func (r AffectedObjectCreateRequest) ToModel(bugID uint) models.AffectedObject {
	return models.AffectedObject{
		BugID:     bugID,
		ObjectURL: utils.SanitizeInput(r.ObjectURL),
	}
}

type RecommendationCreateRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r RecommendationCreateRequest) ToModel(bugID uint) models.Recommendation {
	return models.Recommendation{
		BugID: bugID,
		Text:  utils.SanitizeInput(r.Text),
	}
}

type CVEInformationCreateRequest struct {
	Library       string `json:"library" validate:"required"`
	CVE           string `json:"cve" validate:"required"`
	LatestVersion string `json:"latestVersion" validate:"required"`
}

func (r CVEInformationCreateRequest) ToModel(bugID uint) models.CVEInformation {
	return models.CVEInformation{
		BugID:         bugID,
		Library:       utils.SanitizeInput(r.Library),
		CVE:           utils.SanitizeInput(r.CVE),
		LatestVersion: utils.SanitizeInput(r.LatestVersion),
	}
}
