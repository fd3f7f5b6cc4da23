package models

// AffectedObject is one URL, path or file a bug was observed on.
type AffectedObject struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	BugID     uint   `json:"bugId" gorm:"not null;index"`
	ObjectURL string `json:"objectUrl" gorm:"type:text;not null"`
}

func (m AffectedObject) TableName() string {
	return "affected_objects"
}
