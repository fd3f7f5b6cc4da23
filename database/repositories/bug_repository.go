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

type bugRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.Bug, *gorm.DB]
}

func NewBugRepository(db *gorm.DB) *bugRepository {
	return &bugRepository{
		db:         db,
		Repository: newGormRepository[uint, models.Bug](db),
	}
}

// GetByProjectID loads every bug of a project in one query, ordered by
// creation. The report aggregator relies on this instead of touching the
// bugs target by target.
func (r *bugRepository) GetByProjectID(projectID uint) ([]models.Bug, error) {
	var bugs []models.Bug
	if err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&bugs).Error; err != nil {
		return nil, err
	}
	return bugs, nil
}
