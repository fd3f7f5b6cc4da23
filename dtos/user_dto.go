package dtos

import (
	"time"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

func (r UserCreateRequest) ToModel(createdBy *uint) (models.User, error) {
	role := models.UserRole(r.Role)
	if r.Role == "" {
		role = models.UserRoleUser
	}

	user := models.User{
		Username:  utils.SanitizeInput(r.Username),
		Email:     utils.SanitizeInput(r.Email),
		Role:      role,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if err := user.SetPassword(r.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

type UserPatchRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
}

func (r UserPatchRequest) ApplyToModel(user *models.User) (bool, error) {
	changed := false
	if r.Email != nil {
		user.Email = utils.SanitizeInput(*r.Email)
		changed = true
	}
	if r.Password != nil {
		if err := user.SetPassword(*r.Password); err != nil {
			return false, err
		}
		changed = true
	}
	if r.Role != nil {
		user.Role = models.UserRole(*r.Role)
		changed = true
	}
	if r.IsActive != nil {
		user.IsActive = *r.IsActive
		changed = true
	}
	return changed, nil
}

type ProjectAccessRequest struct {
	ProjectID uint `json:"projectId" validate:"required"`
	HasAccess bool `json:"hasAccess"`
}
