package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type assessmentScopeRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.AssessmentScope, *gorm.DB]
}

func NewAssessmentScopeRepository(db *gorm.DB) *assessmentScopeRepository {
	return &assessmentScopeRepository{
		db:         db,
		Repository: newGormRepository[uint, models.AssessmentScope](db),
	}
}

func (r *assessmentScopeRepository) GetByProjectID(projectID uint) ([]models.AssessmentScope, error) {
	var scopes []models.AssessmentScope
	if err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&scopes).Error; err != nil {
		return nil, err
	}
	return scopes, nil
}
