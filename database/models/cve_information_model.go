package models

// CVEInformation is a user entered CVE reference for a vulnerable library,
// together with the earliest patched version.
type CVEInformation struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	BugID         uint   `json:"bugId" gorm:"not null;index"`
	Library       string `json:"library" gorm:"type:text;not null"`
	CVE           string `json:"cve" gorm:"type:text;not null"`
	LatestVersion string `json:"latestVersion" gorm:"type:text;not null"`
}

func (m CVEInformation) TableName() string {
	return "cve_information"
}
