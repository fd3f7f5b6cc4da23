package models

// BugImage references an uploaded screenshot. Filename is the server
// generated stored name, not the name the client uploaded.
type BugImage struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	BugID    uint    `json:"bugId" gorm:"not null;index"`
	Filename string  `json:"filename" gorm:"type:text;not null"`
	Caption  *string `json:"caption" gorm:"type:text"`
}

func (m BugImage) TableName() string {
	return "bug_images"
}
