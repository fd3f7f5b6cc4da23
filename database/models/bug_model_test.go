package models

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBugValidate(t *testing.T) {
	t.Run("accepts every enumerated category and severity", func(t *testing.T) {
		for _, category := range []BugCategory{BugCategoryApplication, BugCategorySourceCode} {
			for _, severity := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
				bug := Bug{Category: category, Severity: severity, Heading: "XSS"}
				assert.NoError(t, bug.Validate())
			}
		}
	})

	t.Run("rejects unknown category with 400", func(t *testing.T) {
		bug := Bug{Category: "network", Severity: SeverityHigh}

		err := bug.Validate()

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("rejects unknown severity with 400", func(t *testing.T) {
		bug := Bug{Category: BugCategoryApplication, Severity: "catastrophic"}

		err := bug.Validate()

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}
