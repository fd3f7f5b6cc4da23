package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type cveInformationRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.CVEInformation, *gorm.DB]
}

func NewCVEInformationRepository(db *gorm.DB) *cveInformationRepository {
	return &cveInformationRepository{
		db:         db,
		Repository: newGormRepository[uint, models.CVEInformation](db),
	}
}

func (r *cveInformationRepository) GetByBugID(bugID uint) ([]models.CVEInformation, error) {
	var cves []models.CVEInformation
	if err := r.db.Where("bug_id = ?", bugID).Order("id ASC").Find(&cves).Error; err != nil {
		return nil, err
	}
	return cves, nil
}

func (r *cveInformationRepository) GetByBugIDs(bugIDs []uint) ([]models.CVEInformation, error) {
	if len(bugIDs) == 0 {
		return []models.CVEInformation{}, nil
	}
	var cves []models.CVEInformation
	if err := r.db.Where("bug_id IN ?", bugIDs).Order("id ASC").Find(&cves).Error; err != nil {
		return nil, err
	}
	return cves, nil
}
