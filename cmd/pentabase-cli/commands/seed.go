package commands

import (
	"log/slog"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewSeedCommand fills the database with a demo project so a fresh
// deployment has something to render a report from.
func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Insert a demo project with targets, scope and findings",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := seedDemoProject(db); err != nil {
				slog.Error("could not seed demo data", "err", err)
				return
			}

			slog.Info("demo data inserted")
		},
	}

	return &seed
}

func seedDemoProject(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{
			Name:       "Demo Webshop Assessment",
			SystemName: utils.Ptr("webshop-prod"),
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		webApp := models.AssessmentTarget{ProjectID: project.ID, Name: "Web Application"}
		mobileApp := models.AssessmentTarget{ProjectID: project.ID, Name: "Mobile App"}
		apiServer := models.AssessmentTarget{ProjectID: project.ID, Name: "API Server"}
		for _, target := range []*models.AssessmentTarget{&webApp, &mobileApp, &apiServer} {
			if err := tx.Create(target).Error; err != nil {
				return err
			}
		}

		scope := []models.AssessmentScope{
			{ProjectID: project.ID, Subject: "Authentication System", Info: "Login, logout, session management"},
			{ProjectID: project.ID, Subject: "User Management", Info: "User registration, profile management"},
			{ProjectID: project.ID, Subject: "Data Processing", Info: "File upload, data validation"},
		}
		if err := tx.Create(&scope).Error; err != nil {
			return err
		}

		information := []models.CollectedInformation{
			{ProjectID: project.ID, Information: "React.js frontend with TypeScript"},
			{ProjectID: project.ID, Information: "Node.js backend with Express framework"},
			{ProjectID: project.ID, Information: "PostgreSQL database with sensitive user data"},
			{ProjectID: project.ID, Information: "JWT authentication implementation"},
		}
		if err := tx.Create(&information).Error; err != nil {
			return err
		}

		bugs := []models.Bug{
			{
				ProjectID:             project.ID,
				TargetID:              webApp.ID,
				Category:              models.BugCategoryApplication,
				Heading:               "SQL Injection in Login Form",
				Severity:              models.SeverityHigh,
				Description:           "The login form is vulnerable to SQL injection attacks due to improper input validation.",
				RecommendationContent: "Implement parameterized queries and input validation.",
				AffectedObjects: []models.AffectedObject{
					{ObjectURL: "/login"},
					{ObjectURL: "/api/auth"},
				},
				Recommendations: []models.Recommendation{
					{Text: "Use prepared statements for all database queries"},
					{Text: "Implement input validation using whitelist approach"},
				},
				CVEInformation: []models.CVEInformation{
					{Library: "express", CVE: "CVE-2022-24999", LatestVersion: "4.18.2"},
				},
			},
			{
				ProjectID:             project.ID,
				TargetID:              mobileApp.ID,
				Category:              models.BugCategoryApplication,
				Heading:               "Cross-Site Scripting (XSS)",
				Severity:              models.SeverityMedium,
				Description:           "User input is not properly sanitized, allowing XSS attacks.",
				RecommendationContent: "Implement proper input sanitization and output encoding.",
				AffectedObjects: []models.AffectedObject{
					{ObjectURL: "/profile"},
					{ObjectURL: "/comments"},
				},
				Recommendations: []models.Recommendation{
					{Text: "Sanitize all user inputs before displaying"},
					{Text: "Use Content Security Policy (CSP) headers"},
				},
				CVEInformation: []models.CVEInformation{
					{Library: "react", CVE: "CVE-2021-44906", LatestVersion: "18.2.0"},
				},
			},
			{
				ProjectID:             project.ID,
				TargetID:              apiServer.ID,
				Category:              models.BugCategorySourceCode,
				Heading:               "Hardcoded API Keys",
				Severity:              models.SeverityHigh,
				Description:           "API keys are hardcoded in the source code.",
				RecommendationContent: "Move sensitive data to environment variables.",
				AffectedObjects: []models.AffectedObject{
					{ObjectURL: "config.js"},
					{ObjectURL: "api-keys.js"},
				},
				Recommendations: []models.Recommendation{
					{Text: "Store API keys in environment variables"},
					{Text: "Use secret management tools like HashiCorp Vault"},
				},
				CVEInformation: []models.CVEInformation{
					{Library: "node", CVE: "CVE-2023-30581", LatestVersion: "18.17.0"},
				},
			},
		}
		if err := tx.Create(&bugs).Error; err != nil {
			return err
		}

		templates := []models.VulnerabilityTemplate{
			{
				Name:            "SQL Injection",
				Description:     "Untrusted input reaches a database query without parameterization.",
				Recommendations: "Use prepared statements. Validate input against a whitelist.",
				Severity:        utils.Ptr(models.SeverityHigh),
			},
			{
				Name:            "Cross-Site Scripting",
				Description:     "User controlled data is rendered without output encoding.",
				Recommendations: "Encode output per context. Set a Content Security Policy.",
				Severity:        utils.Ptr(models.SeverityMedium),
			},
		}
		return tx.Create(&templates).Error
	})
}
