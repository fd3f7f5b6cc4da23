package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type recommendationRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.Recommendation, *gorm.DB]
}

func NewRecommendationRepository(db *gorm.DB) *recommendationRepository {
	return &recommendationRepository{
		db:         db,
		Repository: newGormRepository[uint, models.Recommendation](db),
	}
}

func (r *recommendationRepository) GetByBugID(bugID uint) ([]models.Recommendation, error) {
	var recommendations []models.Recommendation
	if err := r.db.Where("bug_id = ?", bugID).Order("id ASC").Find(&recommendations).Error; err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (r *recommendationRepository) GetByBugIDs(bugIDs []uint) ([]models.Recommendation, error) {
	if len(bugIDs) == 0 {
		return []models.Recommendation{}, nil
	}
	var recommendations []models.Recommendation
	if err := r.db.Where("bug_id IN ?", bugIDs).Order("id ASC").Find(&recommendations).Error; err != nil {
		return nil, err
	}
	return recommendations, nil
}
