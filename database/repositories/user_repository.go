package repositories

import (
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[uint, models.User](db),
	}
}

func (r *userRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return user, err
}
