package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type assessmentTargetRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.AssessmentTarget, *gorm.DB]
}

func NewAssessmentTargetRepository(db *gorm.DB) *assessmentTargetRepository {
	return &assessmentTargetRepository{
		db:         db,
		Repository: newGormRepository[uint, models.AssessmentTarget](db),
	}
}

func (r *assessmentTargetRepository) GetByProjectID(projectID uint) ([]models.AssessmentTarget, error) {
	var targets []models.AssessmentTarget
	if err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}
