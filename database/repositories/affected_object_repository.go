package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type affectedObjectRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.AffectedObject, *gorm.DB]
}

func NewAffectedObjectRepository(db *gorm.DB) *affectedObjectRepository {
	return &affectedObjectRepository{
		db:         db,
		Repository: newGormRepository[uint, models.AffectedObject](db),
	}
}

func (r *affectedObjectRepository) GetByBugID(bugID uint) ([]models.AffectedObject, error) {
	var objects []models.AffectedObject
	if err := r.db.Where("bug_id = ?", bugID).Order("id ASC").Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

func (r *affectedObjectRepository) GetByBugIDs(bugIDs []uint) ([]models.AffectedObject, error) {
	if len(bugIDs) == 0 {
		return []models.AffectedObject{}, nil
	}
	var objects []models.AffectedObject
	if err := r.db.Where("bug_id IN ?", bugIDs).Order("id ASC").Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}
