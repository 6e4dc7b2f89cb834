package survey

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/odpf/tabctl/core/analytics"
)

func questionNames(questions []*survey.Question) []string {
	return lo.Map(questions, func(q *survey.Question, _ int) string {
		return q.Name
	})
}

func TestCredentialQuestions(t *testing.T) {
	t.Run("should keep a given site when asking for the server", func(t *testing.T) {
		creds := analytics.Credentials{Site: "marketing", Username: "analyst", Password: "secret"}

		questions := credentialQuestions(creds, false)
		actual := applyCredentialAnswers(creds, map[string]string{"server": "https://tableau.example.io"})

		assert.Equal(t, []string{"server"}, questionNames(questions))
		assert.Equal(t, analytics.Credentials{
			Server:   "https://tableau.example.io",
			Site:     "marketing",
			Username: "analyst",
			Password: "secret",
		}, actual)
	})

	t.Run("should ask site along with server when neither is given", func(t *testing.T) {
		questions := credentialQuestions(analytics.Credentials{}, true)

		assert.Equal(t, []string{"server", "site", "token_name", "token_value"}, questionNames(questions))
	})

	t.Run("should ask only missing password fields", func(t *testing.T) {
		creds := analytics.Credentials{Server: "https://tableau.example.io", Username: "analyst"}

		assert.Equal(t, []string{"password"}, questionNames(credentialQuestions(creds, false)))
	})

	t.Run("should not clear values with empty answers", func(t *testing.T) {
		creds := analytics.Credentials{Server: "https://tableau.example.io", Site: "marketing", TokenName: "ci"}

		actual := applyCredentialAnswers(creds, map[string]string{"site": "", "token_value": "secret"})

		assert.Equal(t, "marketing", actual.Site)
		assert.Equal(t, "ci", actual.TokenName)
		assert.Equal(t, "secret", actual.TokenValue)
	})
}

func TestValidators(t *testing.T) {
	t.Run("validateTimeOfDay", func(t *testing.T) {
		assert.NoError(t, validateTimeOfDay("02:30"))
		assert.NoError(t, validateTimeOfDay(" 23:00:00 "))
		assert.Error(t, validateTimeOfDay("24:00"))
		assert.Error(t, validateTimeOfDay(230))
	})

	t.Run("validateWeekdays", func(t *testing.T) {
		assert.NoError(t, validateWeekdays("Monday,wed, FRI"))
		assert.Error(t, validateWeekdays(" , "))
		assert.Error(t, validateWeekdays("Funday"))
	})

	t.Run("validatePositiveNumber", func(t *testing.T) {
		assert.NoError(t, validatePositiveNumber("15"))
		assert.Error(t, validatePositiveNumber("0"))
		assert.Error(t, validatePositiveNumber("two"))
	})
}
