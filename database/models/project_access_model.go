package models

import "time"

// ProjectAccess grants one (user, project) pair explicit access. Admins
// never need a grant, they are unrestricted by role.
type ProjectAccess struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index;uniqueIndex:idx_project_access_user_project"`
	ProjectID uint      `json:"projectId" gorm:"not null;index;uniqueIndex:idx_project_access_user_project"`
	HasAccess bool      `json:"hasAccess" gorm:"not null;default:false"`
	GrantedBy uint      `json:"grantedBy" gorm:"not null"`
	GrantedAt time.Time `json:"grantedAt" gorm:"autoCreateTime"`
}

func (m ProjectAccess) TableName() string {
	return "project_access"
}
