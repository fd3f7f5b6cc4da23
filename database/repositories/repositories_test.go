// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"testing"

	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/testutils"
	"github.com/pentabase/pentabase/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectCrud(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewProjectRepository(db)

	project := models.Project{Name: "Acme Webshop", SystemName: utils.Ptr("shop.acme.test")}
	require.NoError(t, repo.Create(nil, &project))
	assert.NotZero(t, project.ID)

	loaded, err := repo.Read(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Webshop", loaded.Name)
	assert.Nil(t, loaded.UpdatedAt)

	loaded.Name = "Acme Webshop 2026"
	require.NoError(t, repo.Save(nil, &loaded))

	reloaded, err := repo.Read(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Webshop 2026", reloaded.Name)

	require.NoError(t, repo.Delete(nil, project.ID))
	_, err = repo.Read(project.ID)
	assert.True(t, database.IsNotFoundError(err))
}

func TestDeleteAbsentRowIsNotFound(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewProjectRepository(db)

	err := repo.Delete(nil, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectDeleteCascades(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	projectRepo := NewProjectRepository(db)

	project := models.Project{Name: "Cascade"}
	require.NoError(t, projectRepo.Create(nil, &project))

	target := models.AssessmentTarget{ProjectID: project.ID, Name: "API"}
	require.NoError(t, db.Create(&target).Error)
	require.NoError(t, db.Create(&models.AssessmentScope{ProjectID: project.ID, Subject: "api.test", Info: "staging"}).Error)
	require.NoError(t, db.Create(&models.CollectedInformation{ProjectID: project.ID, Information: "go 1.24"}).Error)

	bug := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "IDOR", Severity: models.SeverityMedium}
	require.NoError(t, db.Create(&bug).Error)
	require.NoError(t, db.Create(&models.AffectedObject{BugID: bug.ID, ObjectURL: "/orders/1"}).Error)
	require.NoError(t, db.Create(&models.Recommendation{BugID: bug.ID, Text: "check ownership"}).Error)
	require.NoError(t, db.Create(&models.CVEInformation{BugID: bug.ID, Library: "left-pad", CVE: "CVE-2026-0001", LatestVersion: "1.3.0"}).Error)

	require.NoError(t, projectRepo.Delete(nil, project.ID))

	for _, model := range []any{
		&models.AssessmentTarget{}, &models.AssessmentScope{}, &models.CollectedInformation{},
		&models.Bug{}, &models.AffectedObject{}, &models.Recommendation{}, &models.CVEInformation{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count, "%T should be empty after project delete", model)
	}
}

func TestTargetDeleteCascadesBugs(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	targetRepo := NewAssessmentTargetRepository(db)
	bugRepo := NewBugRepository(db)

	project := models.Project{Name: "Target Cascade"}
	require.NoError(t, db.Create(&project).Error)
	target := models.AssessmentTarget{ProjectID: project.ID, Name: "Mobile App"}
	require.NoError(t, db.Create(&target).Error)
	keep := models.AssessmentTarget{ProjectID: project.ID, Name: "Backend"}
	require.NoError(t, db.Create(&keep).Error)

	require.NoError(t, db.Create(&models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "Doomed", Severity: models.SeverityLow}).Error)
	require.NoError(t, db.Create(&models.Bug{ProjectID: project.ID, TargetID: keep.ID, Category: models.BugCategoryApplication, Heading: "Survivor", Severity: models.SeverityLow}).Error)

	require.NoError(t, targetRepo.Delete(nil, target.ID))

	bugs, err := bugRepo.GetByProjectID(project.ID)
	require.NoError(t, err)
	require.Len(t, bugs, 1)
	assert.Equal(t, "Survivor", bugs[0].Heading)
}

func TestGetByBugIDs(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewAffectedObjectRepository(db)

	project := models.Project{Name: "Bulk"}
	require.NoError(t, db.Create(&project).Error)
	target := models.AssessmentTarget{ProjectID: project.ID, Name: "Web"}
	require.NoError(t, db.Create(&target).Error)

	first := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "A", Severity: models.SeverityLow}
	second := models.Bug{ProjectID: project.ID, TargetID: target.ID, Category: models.BugCategoryApplication, Heading: "B", Severity: models.SeverityLow}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, db.Create(&models.AffectedObject{BugID: first.ID, ObjectURL: "/a"}).Error)
	require.NoError(t, db.Create(&models.AffectedObject{BugID: second.ID, ObjectURL: "/b"}).Error)
	require.NoError(t, db.Create(&models.AffectedObject{BugID: first.ID, ObjectURL: "/c"}).Error)

	objects, err := repo.GetByBugIDs([]uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Len(t, objects, 3)

	// empty id list short-circuits without touching the database
	objects, err = repo.GetByBugIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestUserUniqueUsername(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewUserRepository(db)

	alice := models.User{Username: "alice", Email: "alice@example.com", Role: models.UserRoleUser, IsActive: true}
	require.NoError(t, alice.SetPassword("s3cret"))
	require.NoError(t, repo.Create(nil, &alice))

	duplicate := models.User{Username: "alice", Email: "other@example.com", Role: models.UserRoleUser, IsActive: true}
	require.NoError(t, duplicate.SetPassword("s3cret"))
	err := repo.Create(nil, &duplicate)
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKeyError(err))

	found, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = repo.FindByUsername("nobody")
	assert.True(t, database.IsNotFoundError(err))
}

func TestProjectAccessQueries(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewProjectAccessRepository(db)

	user := models.User{Username: "bob", Email: "bob@example.com", Role: models.UserRoleUser, IsActive: true, PasswordHash: "x"}
	admin := models.User{Username: "root", Email: "root@example.com", Role: models.UserRoleAdmin, IsActive: true, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&admin).Error)

	projectA := models.Project{Name: "A"}
	projectB := models.Project{Name: "B"}
	require.NoError(t, db.Create(&projectA).Error)
	require.NoError(t, db.Create(&projectB).Error)

	require.NoError(t, repo.Create(nil, &models.ProjectAccess{UserID: user.ID, ProjectID: projectA.ID, HasAccess: true, GrantedBy: admin.ID}))
	// a revoked grant must not show up in the accessible set
	require.NoError(t, repo.Create(nil, &models.ProjectAccess{UserID: user.ID, ProjectID: projectB.ID, HasAccess: false, GrantedBy: admin.ID}))

	ids, err := repo.AccessibleProjectIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{projectA.ID}, ids)

	grants, err := repo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, grants, 2)

	grant, err := repo.FindByUserAndProject(user.ID, projectB.ID)
	require.NoError(t, err)
	assert.False(t, grant.HasAccess)

	// one grant row per (user, project)
	err = repo.Create(nil, &models.ProjectAccess{UserID: user.ID, ProjectID: projectA.ID, HasAccess: true, GrantedBy: admin.ID})
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKeyError(err))
}

func TestVulnerabilityTemplateSearch(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewVulnerabilityTemplateRepository(db)

	for _, name := range []string{"SQL Injection", "Blind SQL Injection", "Cross-Site Scripting"} {
		require.NoError(t, repo.Create(nil, &models.VulnerabilityTemplate{Name: name, Description: "d"}))
	}

	templates, err := repo.SearchByName("sql")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Blind SQL Injection", templates[0].Name)

	templates, err = repo.SearchByName("nope")
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestVulnerabilityTemplateSearchLiteralWildcards(t *testing.T) {
	db := testutils.InMemoryDatabase(t)
	repo := NewVulnerabilityTemplateRepository(db)

	for _, name := range []string{"SQL Injection", "100% Packet Loss", "snake_case Leak"} {
		require.NoError(t, repo.Create(nil, &models.VulnerabilityTemplate{Name: name, Description: "d"}))
	}

	// % and _ are literal characters in the query, not wildcards
	templates, err := repo.SearchByName("%")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "100% Packet Loss", templates[0].Name)

	templates, err = repo.SearchByName("e_c")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "snake_case Leak", templates[0].Name)
}
