package repositories

import (
	"time"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uint, models.Project](db),
	}
}

// Touch bumps only the modification timestamp. A full-row save would
// write back whatever snapshot the caller is holding and revert a
// concurrently committed rename.
func (r *projectRepository) Touch(tx *gorm.DB, id uint) error {
	return r.GetDB(tx).Model(&models.Project{}).Where("id = ?", id).Update("updated_at", time.Now()).Error
}
