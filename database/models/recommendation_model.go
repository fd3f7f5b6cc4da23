package models

type Recommendation struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	BugID uint   `json:"bugId" gorm:"not null;index"`
	Text  string `json:"text" gorm:"type:text;not null"`
}

func (m Recommendation) TableName() string {
	return "recommendations"
}
