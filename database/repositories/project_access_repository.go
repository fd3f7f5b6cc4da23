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

package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type projectAccessRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.ProjectAccess, *gorm.DB]
}

func NewProjectAccessRepository(db *gorm.DB) *projectAccessRepository {
	return &projectAccessRepository{
		db:         db,
		Repository: newGormRepository[uint, models.ProjectAccess](db),
	}
}

// AccessibleProjectIDs returns the project ids a user holds an active
// grant for. Admins never go through this path.
func (r *projectAccessRepository) AccessibleProjectIDs(userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.ProjectAccess{}).
		Where("user_id = ? AND has_access = ?", userID, true).
		Order("project_id ASC").
		Pluck("project_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *projectAccessRepository) FindByUserAndProject(userID, projectID uint) (models.ProjectAccess, error) {
	var access models.ProjectAccess
	err := r.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&access).Error
	return access, err
}

func (r *projectAccessRepository) GetByUserID(userID uint) ([]models.ProjectAccess, error) {
	var grants []models.ProjectAccess
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}
