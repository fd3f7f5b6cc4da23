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

package dtos

import "github.com/pentabase/pentabase/database/models"

// ReportResponse is the aggregated read model of one project. The field
// names and nesting are a stable external contract consumed by rendering
// and export tooling - do not rename.
type ReportResponse struct {
	ProjectID   uint   `json:"project_id"`
	ProjectName string `json:"project_name"`
	SystemName  string `json:"system_name"`
	UpdatedAt   string `json:"updated_at"`

	Targets []ReportTarget     `json:"targets"`
	Scope   []ReportScopeEntry `json:"scope"`

	// ApplicationInfo is the flattened information texts; the full rows are
	// kept alongside for compatibility with existing consumers.
	ApplicationInfo      []string                      `json:"application_info"`
	CollectedInformation []models.CollectedInformation `json:"collected_information"`

	SectionsByCategory ReportSections `json:"sections_by_category"`
}

type ReportTarget struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ReportScopeEntry struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Info    string `json:"info"`
}

type ReportSections struct {
	Application []ReportSection `json:"application"`
	SourceCode  []ReportSection `json:"source_code"`
}

type ReportSection struct {
	TargetHeading   string                `json:"target_heading"`
	Vulnerabilities []VulnerabilityDetail `json:"vulnerabilities"`
}

type VulnerabilityDetail struct {
	Vulnerability   ReportVulnerability   `json:"vulnerability"`
	Description     ReportDescription     `json:"description"`
	AffectedObjects ReportObjectList      `json:"affected_objects"`
	Recommendations ReportRecommendations `json:"recommendations"`
	Images          []ReportImage         `json:"images"`
	CVE             []ReportCVE           `json:"cve"`
}

type ReportVulnerability struct {
	Heading  string `json:"heading"`
	Severity string `json:"severity"`
}

type ReportDescription struct {
	Text string `json:"text"`
}

type ReportObjectList struct {
	List []string `json:"list"`
}

type ReportRecommendations struct {
	Content string   `json:"content"`
	List    []string `json:"list"`
}

type ReportImage struct {
	Filename    string `json:"filename"`
	Description string `json:"description"`
}

type ReportCVE struct {
	Library       string `json:"library"`
	CVE           string `json:"cve"`
	LatestVersion string `json:"latest_version"`
}
