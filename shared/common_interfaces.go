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

package shared

import (
	"time"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/utils"
)

type ProjectRepository interface {
	utils.Repository[uint, models.Project, DB]
	// Touch updates only the updated_at column.
	Touch(tx DB, id uint) error
}

type AssessmentTargetRepository interface {
	utils.Repository[uint, models.AssessmentTarget, DB]
	GetByProjectID(projectID uint) ([]models.AssessmentTarget, error)
}

type AssessmentScopeRepository interface {
	utils.Repository[uint, models.AssessmentScope, DB]
	GetByProjectID(projectID uint) ([]models.AssessmentScope, error)
}

type CollectedInformationRepository interface {
	utils.Repository[uint, models.CollectedInformation, DB]
	GetByProjectID(projectID uint) ([]models.CollectedInformation, error)
}

type BugRepository interface {
	utils.Repository[uint, models.Bug, DB]
	GetByProjectID(projectID uint) ([]models.Bug, error)
}

type AffectedObjectRepository interface {
	utils.Repository[uint, models.AffectedObject, DB]
	GetByBugID(bugID uint) ([]models.AffectedObject, error)
	GetByBugIDs(bugIDs []uint) ([]models.AffectedObject, error)
}

type RecommendationRepository interface {
	utils.Repository[uint, models.Recommendation, DB]
	GetByBugID(bugID uint) ([]models.Recommendation, error)
	GetByBugIDs(bugIDs []uint) ([]models.Recommendation, error)
}

type BugImageRepository interface {
	utils.Repository[uint, models.BugImage, DB]
	GetByBugID(bugID uint) ([]models.BugImage, error)
	GetByBugIDs(bugIDs []uint) ([]models.BugImage, error)
}

type CVEInformationRepository interface {
	utils.Repository[uint, models.CVEInformation, DB]
	GetByBugID(bugID uint) ([]models.CVEInformation, error)
	GetByBugIDs(bugIDs []uint) ([]models.CVEInformation, error)
}

type VulnerabilityTemplateRepository interface {
	utils.Repository[uint, models.VulnerabilityTemplate, DB]
	SearchByName(query string) ([]models.VulnerabilityTemplate, error)
}

type UserRepository interface {
	utils.Repository[uint, models.User, DB]
	FindByUsername(username string) (models.User, error)
}

type ProjectAccessRepository interface {
	utils.Repository[uint, models.ProjectAccess, DB]
	AccessibleProjectIDs(userID uint) ([]uint, error)
	FindByUserAndProject(userID, projectID uint) (models.ProjectAccess, error)
	GetByUserID(userID uint) ([]models.ProjectAccess, error)
}

// AccessControl resolves which projects a user may act on. Admins are
// unrestricted; callers must branch on the role instead of enumerating.
type AccessControl interface {
	AccessibleProjects(user models.User) ([]uint, error)
	Authorize(user models.User, projectID uint) error
}

type ReportService interface {
	GenerateReport(projectID uint) (dtos.ReportResponse, error)
}

type TokenService interface {
	Issue(user models.User) (string, time.Time, error)
	Verify(token string) (uint, error)
}
