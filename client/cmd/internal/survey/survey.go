package survey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/core/schedule"
)

// AskToConfirm asks a yes/no question, defaulting to yes
func AskToConfirm(message string) (bool, error) {
	var confirmed bool
	if err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: true,
	}, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

func askQuestions(questions []*survey.Question) (map[string]string, error) {
	answers := make(map[string]string)
	if len(questions) == 0 {
		return answers, nil
	}

	raw := make(map[string]interface{})
	if err := survey.Ask(questions, &raw); err != nil {
		return nil, err
	}
	for key, value := range raw {
		answers[key] = strings.TrimSpace(fmt.Sprint(value))
	}
	return answers, nil
}

func validateTimeOfDay(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return errors.New("invalid type of time")
	}
	_, err := analytics.ParseTimeOfDay(strings.TrimSpace(value))
	return err
}

func validateWeekdays(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return errors.New("invalid type of weekdays")
	}
	days := schedule.SplitList(value)
	if len(days) == 0 {
		return errors.New("at least one weekday is required")
	}
	_, err := analytics.ParseWeekdays(days)
	return err
}

func validatePositiveNumber(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return errors.New("invalid type of number")
	}
	n, err := schedule.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	if n < 1 {
		return errors.New("number must be greater than zero")
	}
	return nil
}
