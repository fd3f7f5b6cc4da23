package models

// AssessmentTarget is one system or component under assessment, e.g.
// "Web Application". Bugs reference exactly one target and are deleted
// together with it.
type AssessmentTarget struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProjectID uint   `json:"projectId" gorm:"not null;index"`
	Name      string `json:"name" gorm:"type:text;not null"`

	Bugs []Bug `json:"bugs,omitempty" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
}

func (m AssessmentTarget) TableName() string {
	return "assessment_targets"
}
