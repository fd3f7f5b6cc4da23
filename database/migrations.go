package database

import (
	"log/slog"

	"github.com/pentabase/pentabase/database/models"
	"gorm.io/gorm"
)

// RunMigrationsWithDB brings the schema up to date. Parents are migrated
// before children so the cascade foreign keys can be created.
func RunMigrationsWithDB(db *gorm.DB) error {
	slog.Info("running database migrations")

	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectAccess{},
		&models.AssessmentTarget{},
		&models.AssessmentScope{},
		&models.CollectedInformation{},
		&models.Bug{},
		&models.AffectedObject{},
		&models.Recommendation{},
		&models.BugImage{},
		&models.CVEInformation{},
		&models.VulnerabilityTemplate{},
	)
}
