package repositories

import (
	"strings"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/utils"
	"gorm.io/gorm"
)

type vulnerabilityTemplateRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.VulnerabilityTemplate, *gorm.DB]
}

func NewVulnerabilityTemplateRepository(db *gorm.DB) *vulnerabilityTemplateRepository {
	return &vulnerabilityTemplateRepository{
		db:         db,
		Repository: newGormRepository[uint, models.VulnerabilityTemplate](db),
	}
}

// escapeLike neutralizes LIKE metacharacters so a query of "%" matches
// a literal percent sign instead of every row.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SearchByName does a case-insensitive substring match, used by the bug
// editor to suggest catalog entries while typing.
func (r *vulnerabilityTemplateRepository) SearchByName(query string) ([]models.VulnerabilityTemplate, error) {
	pattern := "%" + escapeLike(strings.ToLower(utils.SanitizeInput(query))) + "%"

	var templates []models.VulnerabilityTemplate
	if err := r.db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("name ASC").Limit(20).Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
