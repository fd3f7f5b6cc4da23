package models

// AssessmentScope documents one subject-and-description pair defining the
// assessment boundaries of a project.
type AssessmentScope struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProjectID uint   `json:"projectId" gorm:"not null;index"`
	Subject   string `json:"subject" gorm:"type:text;not null"`
	Info      string `json:"info" gorm:"type:text;not null"`
}

func (m AssessmentScope) TableName() string {
	return "assessment_scope"
}
