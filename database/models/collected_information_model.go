package models

type CollectedInformation struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ProjectID   uint   `json:"projectId" gorm:"not null;index"`
	Information string `json:"information" gorm:"type:text;not null"`
}

func (m CollectedInformation) TableName() string {
	return "collected_information"
}
