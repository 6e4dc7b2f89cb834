package survey

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/odpf/salt/log"

	"github.com/odpf/tabctl/core/analytics"
)

// CredentialsSurvey asks for connection values not given by flags or config
type CredentialsSurvey struct {
	logger log.Logger
}

// NewCredentialsSurvey initializes credentials survey
func NewCredentialsSurvey(logger log.Logger) *CredentialsSurvey {
	return &CredentialsSurvey{
		logger: logger,
	}
}

const (
	authMethodToken    = "Personal access token"
	authMethodPassword = "Username and password"
)

// AskToUseToken asks which sign in method to use
func (*CredentialsSurvey) AskToUseToken() (bool, error) {
	var method string
	if err := survey.AskOne(&survey.Select{
		Message: "How do you want to sign in?",
		Options: []string{authMethodToken, authMethodPassword},
		Default: authMethodToken,
	}, &method); err != nil {
		return false, err
	}
	return method == authMethodToken, nil
}

// AskMissingCredentials asks only for the empty fields. When useToken is set,
// token fields are asked instead of username and password.
func (c *CredentialsSurvey) AskMissingCredentials(creds analytics.Credentials, useToken bool) (analytics.Credentials, error) {
	questions := credentialQuestions(creds, useToken)
	answers, err := askQuestions(questions)
	if err != nil {
		return creds, err
	}
	c.logger.Debug("credentials asked", "questions", len(questions))
	return applyCredentialAnswers(creds, answers), nil
}

func credentialQuestions(creds analytics.Credentials, useToken bool) []*survey.Question {
	var questions []*survey.Question
	if creds.Server == "" {
		questions = append(questions, &survey.Question{
			Name: "server",
			Prompt: &survey.Input{
				Message: "Server URL:",
				Help:    "e.g. https://tableau.example.com",
			},
			Validate: survey.Required,
		})
		// an empty site is the default site, so it is only asked along with the server
		if creds.Site == "" {
			questions = append(questions, &survey.Question{
				Name: "site",
				Prompt: &survey.Input{
					Message: "Site:",
					Help:    "Content URL of the site, leave empty for the default site",
				},
			})
		}
	}

	if useToken {
		if creds.TokenName == "" {
			questions = append(questions, &survey.Question{
				Name:     "token_name",
				Prompt:   &survey.Input{Message: "Personal access token name:"},
				Validate: survey.Required,
			})
		}
		if creds.TokenValue == "" {
			questions = append(questions, &survey.Question{
				Name:     "token_value",
				Prompt:   &survey.Password{Message: "Personal access token value:"},
				Validate: survey.Required,
			})
		}
	} else {
		if creds.Username == "" {
			questions = append(questions, &survey.Question{
				Name:     "username",
				Prompt:   &survey.Input{Message: "Username:"},
				Validate: survey.Required,
			})
		}
		if creds.Password == "" {
			questions = append(questions, &survey.Question{
				Name:     "password",
				Prompt:   &survey.Password{Message: "Password:"},
				Validate: survey.Required,
			})
		}
	}
	return questions
}

// applyCredentialAnswers fills creds from non-empty answers, values already set are never cleared.
func applyCredentialAnswers(creds analytics.Credentials, answers map[string]string) analytics.Credentials {
	fields := map[string]*string{
		"server":      &creds.Server,
		"site":        &creds.Site,
		"username":    &creds.Username,
		"password":    &creds.Password,
		"token_name":  &creds.TokenName,
		"token_value": &creds.TokenValue,
	}
	for name, field := range fields {
		if v := answers[name]; v != "" {
			*field = v
		}
	}
	return creds
}

// AskDatasourceName asks for the name of the datasource to refresh
func (*CredentialsSurvey) AskDatasourceName() (string, error) {
	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Datasource name:",
		Help:    "Name of the published datasource whose extract should be refreshed",
	}, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return name, nil
}
