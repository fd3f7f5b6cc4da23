package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type bugImageRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.BugImage, *gorm.DB]
}

func NewBugImageRepository(db *gorm.DB) *bugImageRepository {
	return &bugImageRepository{
		db:         db,
		Repository: newGormRepository[uint, models.BugImage](db),
	}
}

func (r *bugImageRepository) GetByBugID(bugID uint) ([]models.BugImage, error) {
	var images []models.BugImage
	if err := r.db.Where("bug_id = ?", bugID).Order("id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *bugImageRepository) GetByBugIDs(bugIDs []uint) ([]models.BugImage, error) {
	if len(bugIDs) == 0 {
		return []models.BugImage{}, nil
	}
	var images []models.BugImage
	if err := r.db.Where("bug_id IN ?", bugIDs).Order("id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
