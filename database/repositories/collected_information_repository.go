package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type collectedInformationRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.CollectedInformation, *gorm.DB]
}

func NewCollectedInformationRepository(db *gorm.DB) *collectedInformationRepository {
	return &collectedInformationRepository{
		db:         db,
		Repository: newGormRepository[uint, models.CollectedInformation](db),
	}
}

func (r *collectedInformationRepository) GetByProjectID(projectID uint) ([]models.CollectedInformation, error) {
	var information []models.CollectedInformation
	if err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&information).Error; err != nil {
		return nil, err
	}
	return information, nil
}
