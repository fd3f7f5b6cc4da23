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

package services

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
)

type reportService struct {
	projectRepository        shared.ProjectRepository
	targetRepository         shared.AssessmentTargetRepository
	scopeRepository          shared.AssessmentScopeRepository
	informationRepository    shared.CollectedInformationRepository
	bugRepository            shared.BugRepository
	affectedObjectRepository shared.AffectedObjectRepository
	recommendationRepository shared.RecommendationRepository
	imageRepository          shared.BugImageRepository
	cveRepository            shared.CVEInformationRepository
}

func NewReportService(
	projectRepository shared.ProjectRepository,
	targetRepository shared.AssessmentTargetRepository,
	scopeRepository shared.AssessmentScopeRepository,
	informationRepository shared.CollectedInformationRepository,
	bugRepository shared.BugRepository,
	affectedObjectRepository shared.AffectedObjectRepository,
	recommendationRepository shared.RecommendationRepository,
	imageRepository shared.BugImageRepository,
	cveRepository shared.CVEInformationRepository,
) *reportService {
	return &reportService{
		projectRepository:        projectRepository,
		targetRepository:         targetRepository,
		scopeRepository:          scopeRepository,
		informationRepository:    informationRepository,
		bugRepository:            bugRepository,
		affectedObjectRepository: affectedObjectRepository,
		recommendationRepository: recommendationRepository,
		imageRepository:          imageRepository,
		cveRepository:            cveRepository,
	}
}

// bugChildren carries the bulk loaded child rows of all bugs of a
// project, grouped by bug id.
type bugChildren struct {
	affectedObjects map[uint][]models.AffectedObject
	recommendations map[uint][]models.Recommendation
	images          map[uint][]models.BugImage
	cves            map[uint][]models.CVEInformation
}

// GenerateReport folds a whole project into one nested report document.
// It is a pure read: calling it twice without intervening writes yields
// identical output.
func (s *reportService) GenerateReport(projectID uint) (dtos.ReportResponse, error) {
	project, err := s.projectRepository.Read(projectID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return dtos.ReportResponse{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return dtos.ReportResponse{}, echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}

	targets, err := s.targetRepository.GetByProjectID(projectID)
	if err != nil {
		return dtos.ReportResponse{}, echo.NewHTTPError(500, "could not load assessment targets").WithInternal(err)
	}

	scopes, err := s.scopeRepository.GetByProjectID(projectID)
	if err != nil {
		return dtos.ReportResponse{}, echo.NewHTTPError(500, "could not load assessment scope").WithInternal(err)
	}

	information, err := s.informationRepository.GetByProjectID(projectID)
	if err != nil {
		return dtos.ReportResponse{}, echo.NewHTTPError(500, "could not load collected information").WithInternal(err)
	}

	// a single query for all bugs of the project - the children are then
	// fetched in four bulk queries keyed by the bug id set, never one
	// query per target or per bug.
	bugs, err := s.bugRepository.GetByProjectID(projectID)
	if err != nil {
		return dtos.ReportResponse{}, echo.NewHTTPError(500, "could not load bugs").WithInternal(err)
	}

	children, err := s.loadChildren(utils.Map(bugs, func(b models.Bug) uint { return b.ID }))
	if err != nil {
		return dtos.ReportResponse{}, err
	}

	targetNames := make(map[uint]string, len(targets))
	for _, target := range targets {
		targetNames[target.ID] = target.Name
	}

	applicationBugs := utils.Filter(bugs, func(b models.Bug) bool { return b.Category == models.BugCategoryApplication })
	sourceCodeBugs := utils.Filter(bugs, func(b models.Bug) bool { return b.Category == models.BugCategorySourceCode })

	report := dtos.ReportResponse{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		SystemName:  utils.OrDefault(project.SystemName),
		UpdatedAt:   lastUpdatedAt(project),

		Targets: utils.Map(targets, func(t models.AssessmentTarget) dtos.ReportTarget {
			return dtos.ReportTarget{ID: t.ID, Name: t.Name}
		}),
		Scope: utils.Map(scopes, func(s models.AssessmentScope) dtos.ReportScopeEntry {
			return dtos.ReportScopeEntry{ID: s.ID, Subject: s.Subject, Info: s.Info}
		}),

		ApplicationInfo: utils.Map(information, func(i models.CollectedInformation) string {
			return i.Information
		}),
		CollectedInformation: information,

		SectionsByCategory: dtos.ReportSections{
			Application: s.buildSections(applicationBugs, targetNames, children),
			SourceCode:  s.buildSections(sourceCodeBugs, targetNames, children),
		},
	}

	return report, nil
}

func (s *reportService) loadChildren(bugIDs []uint) (bugChildren, error) {
	affectedObjects, err := s.affectedObjectRepository.GetByBugIDs(bugIDs)
	if err != nil {
		return bugChildren{}, echo.NewHTTPError(500, "could not load affected objects").WithInternal(err)
	}

	recommendations, err := s.recommendationRepository.GetByBugIDs(bugIDs)
	if err != nil {
		return bugChildren{}, echo.NewHTTPError(500, "could not load recommendations").WithInternal(err)
	}

	images, err := s.imageRepository.GetByBugIDs(bugIDs)
	if err != nil {
		return bugChildren{}, echo.NewHTTPError(500, "could not load images").WithInternal(err)
	}

	cves, err := s.cveRepository.GetByBugIDs(bugIDs)
	if err != nil {
		return bugChildren{}, echo.NewHTTPError(500, "could not load cve information").WithInternal(err)
	}

	children := bugChildren{
		affectedObjects: make(map[uint][]models.AffectedObject),
		recommendations: make(map[uint][]models.Recommendation),
		images:          make(map[uint][]models.BugImage),
		cves:            make(map[uint][]models.CVEInformation),
	}
	for _, o := range affectedObjects {
		children.affectedObjects[o.BugID] = append(children.affectedObjects[o.BugID], o)
	}
	for _, r := range recommendations {
		children.recommendations[r.BugID] = append(children.recommendations[r.BugID], r)
	}
	for _, i := range images {
		children.images[i.BugID] = append(children.images[i.BugID], i)
	}
	for _, c := range cves {
		children.cves[c.BugID] = append(children.cves[c.BugID], c)
	}

	return children, nil
}

// buildSections groups the bugs of one category by their target,
// preserving the order targets were first encountered. Targets without a
// bug in this category simply do not appear.
func (s *reportService) buildSections(bugs []models.Bug, targetNames map[uint]string, children bugChildren) []dtos.ReportSection {
	targetIDs, byTarget := utils.GroupBy(bugs, func(b models.Bug) uint { return b.TargetID })

	sections := make([]dtos.ReportSection, 0, len(targetIDs))
	for _, targetID := range targetIDs {
		sections = append(sections, dtos.ReportSection{
			TargetHeading: targetNames[targetID],
			Vulnerabilities: utils.Map(byTarget[targetID], func(b models.Bug) dtos.VulnerabilityDetail {
				return buildVulnerabilityDetail(b, children)
			}),
		})
	}

	return sections
}

func buildVulnerabilityDetail(bug models.Bug, children bugChildren) dtos.VulnerabilityDetail {
	recommendationTexts := utils.Map(children.recommendations[bug.ID], func(r models.Recommendation) string {
		return r.Text
	})

	// the summary field and the recommendation rows are maintained
	// independently; the rows are only joined when the summary is empty.
	content := bug.RecommendationContent
	if content == "" {
		content = strings.Join(recommendationTexts, "\n")
	}

	return dtos.VulnerabilityDetail{
		Vulnerability: dtos.ReportVulnerability{
			Heading:  bug.Heading,
			Severity: string(bug.Severity),
		},
		Description: dtos.ReportDescription{Text: bug.Description},
		AffectedObjects: dtos.ReportObjectList{
			List: utils.Map(children.affectedObjects[bug.ID], func(o models.AffectedObject) string {
				return o.ObjectURL
			}),
		},
		Recommendations: dtos.ReportRecommendations{
			Content: content,
			List:    recommendationTexts,
		},
		Images: utils.Map(children.images[bug.ID], func(i models.BugImage) dtos.ReportImage {
			return dtos.ReportImage{Filename: i.Filename, Description: utils.OrDefault(i.Caption)}
		}),
		CVE: utils.Map(children.cves[bug.ID], func(c models.CVEInformation) dtos.ReportCVE {
			return dtos.ReportCVE{Library: c.Library, CVE: c.CVE, LatestVersion: c.LatestVersion}
		}),
	}
}

func lastUpdatedAt(project models.Project) string {
	if project.UpdatedAt != nil {
		return project.UpdatedAt.Format(time.RFC3339)
	}
	return project.CreatedAt.Format(time.RFC3339)
}
