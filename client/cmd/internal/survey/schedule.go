package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/odpf/salt/log"
	"github.com/samber/lo"

	"github.com/odpf/tabctl/core/schedule"
)

// ScheduleSurvey defines surveys related to schedule creation
type ScheduleSurvey struct {
	logger log.Logger
}

// NewScheduleSurvey initializes schedule survey
func NewScheduleSurvey(logger log.Logger) *ScheduleSurvey {
	return &ScheduleSurvey{
		logger: logger,
	}
}

// AskToSelectKinds asks which schedules to create, keeping creation order
func (s *ScheduleSurvey) AskToSelectKinds() ([]schedule.Kind, error) {
	options := lo.Map(schedule.Kinds, func(k schedule.Kind, _ int) string {
		return k.Title()
	})
	for {
		var selected []string
		if err := survey.AskOne(&survey.MultiSelect{
			Message: "Select schedules to create:",
			Options: options,
			Default: options,
		}, &selected); err != nil {
			return nil, err
		}
		if len(selected) == 0 {
			s.logger.Error("Select at least one schedule")
			continue
		}
		return lo.Filter(schedule.Kinds, func(k schedule.Kind, _ int) bool {
			return lo.Contains(selected, k.Title())
		}), nil
	}
}

// AskParams asks the timing inputs relevant to kind, prefilled with defaults
func (*ScheduleSurvey) AskParams(kind schedule.Kind) (schedule.Params, error) {
	defaults := schedule.DefaultRawParams(kind)
	title := kind.Title()

	questions := []*survey.Question{
		{
			Name: "start",
			Prompt: &survey.Input{
				Message: fmt.Sprintf("%s start time:", title),
				Default: defaults.Start,
				Help:    "Format: HH:MM",
			},
			Validate: validateTimeOfDay,
		},
	}

	switch kind {
	case schedule.KindHourly:
		questions = append(questions,
			&survey.Question{
				Name: "end",
				Prompt: &survey.Input{
					Message: fmt.Sprintf("%s end time:", title),
					Default: defaults.End,
					Help:    "Format: HH:MM",
				},
				Validate: validateTimeOfDay,
			},
			&survey.Question{
				Name: "interval",
				Prompt: &survey.Input{
					Message: "Interval in hours:",
					Default: strconv.Itoa(defaults.Interval),
				},
				Validate: validatePositiveNumber,
			},
		)
	case schedule.KindWeekly:
		questions = append(questions, &survey.Question{
			Name: "weekdays",
			Prompt: &survey.Input{
				Message: "Weekdays:",
				Default: strings.Join(defaults.Weekdays, ","),
				Help:    "Comma separated, e.g. Monday,Wednesday,Friday",
			},
			Validate: validateWeekdays,
		})
	case schedule.KindMonthly:
		questions = append(questions, &survey.Question{
			Name: "day",
			Prompt: &survey.Input{
				Message: "Day of month:",
				Default: strconv.Itoa(defaults.MonthDay),
			},
			Validate: validatePositiveNumber,
		})
	}

	answers, err := askQuestions(questions)
	if err != nil {
		return schedule.Params{}, err
	}

	raw := schedule.RawParams{
		Start:    answers["start"],
		End:      answers["end"],
		Weekdays: schedule.SplitList(answers["weekdays"]),
	}
	if v, ok := answers["interval"]; ok {
		raw.Interval, _ = schedule.Atoi(v)
	}
	if v, ok := answers["day"]; ok {
		raw.MonthDay, _ = schedule.Atoi(v)
	}
	return schedule.ParseParams(kind, raw)
}
