package schedule

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/internal/errors"
)

type Kind string

const (
	KindHourly  Kind = "hourly"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// Kinds lists every kind in creation order.
var Kinds = []Kind{KindHourly, KindDaily, KindWeekly, KindMonthly}

func KindFromString(value string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(value, string(k)) {
			return k, nil
		}
	}
	return "", errors.InvalidArgument(analytics.EntitySchedule, "unknown schedule kind "+value)
}

func (k Kind) String() string {
	return string(k)
}

// Title is the capitalized kind, e.g. Hourly.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Definition holds the fixed attributes every schedule of a kind is created with.
type Definition struct {
	Kind           Kind
	Name           string
	Priority       int
	Type           analytics.ScheduleType
	ExecutionOrder analytics.ExecutionOrder
}

var definitions = map[Kind]Definition{
	KindHourly: {
		Kind:           KindHourly,
		Name:           "Hourly-Schedule",
		Priority:       50,
		Type:           analytics.ScheduleTypeExtract,
		ExecutionOrder: analytics.ExecutionOrderParallel,
	},
	KindDaily: {
		Kind:           KindDaily,
		Name:           "Daily-Schedule",
		Priority:       60,
		Type:           analytics.ScheduleTypeSubscription,
		ExecutionOrder: analytics.ExecutionOrderSerial,
	},
	KindWeekly: {
		Kind:           KindWeekly,
		Name:           "Weekly-Schedule",
		Priority:       70,
		Type:           analytics.ScheduleTypeExtract,
		ExecutionOrder: analytics.ExecutionOrderSerial,
	},
	KindMonthly: {
		Kind:           KindMonthly,
		Name:           "Monthly-Schedule",
		Priority:       80,
		Type:           analytics.ScheduleTypeSubscription,
		ExecutionOrder: analytics.ExecutionOrderParallel,
	},
}

func DefinitionOf(kind Kind) (Definition, error) {
	def, ok := definitions[kind]
	if !ok {
		return Definition{}, errors.InvalidArgument(analytics.EntitySchedule, "unknown schedule kind "+kind.String())
	}
	return def, nil
}

// Params carries the frequency inputs, only the fields of the selected kind are used.
type Params struct {
	Start         analytics.TimeOfDay
	End           analytics.TimeOfDay
	IntervalHours int
	Weekdays      []time.Weekday
	MonthDay      int
}

// DefaultParams returns the sample frequency for kind.
func DefaultParams(kind Kind) Params {
	switch kind {
	case KindHourly:
		return Params{
			Start:         analytics.TimeOfDay{Hour: 2, Minute: 30},
			End:           analytics.TimeOfDay{Hour: 23},
			IntervalHours: 2,
		}
	case KindDaily:
		return Params{Start: analytics.TimeOfDay{Hour: 5}}
	case KindWeekly:
		return Params{
			Start:    analytics.TimeOfDay{Hour: 19, Minute: 15},
			Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		}
	case KindMonthly:
		return Params{
			Start:    analytics.TimeOfDay{Hour: 23, Minute: 30},
			MonthDay: 15,
		}
	}
	return Params{}
}

// Build returns the descriptor for kind, the frequency is taken verbatim from params.
func Build(kind Kind, params Params) (analytics.Schedule, error) {
	def, err := DefinitionOf(kind)
	if err != nil {
		return analytics.Schedule{}, err
	}
	if err := params.validate(kind); err != nil {
		return analytics.Schedule{}, errors.InvalidArgument(analytics.EntitySchedule, err.Error())
	}

	var frequency analytics.Frequency
	switch kind {
	case KindHourly:
		frequency = analytics.HourlyFrequency{Start: params.Start, End: params.End, IntervalHours: params.IntervalHours}
	case KindDaily:
		frequency = analytics.DailyFrequency{Start: params.Start}
	case KindWeekly:
		frequency = analytics.WeeklyFrequency{Start: params.Start, Weekdays: params.Weekdays}
	case KindMonthly:
		frequency = analytics.MonthlyFrequency{Start: params.Start, MonthDay: params.MonthDay}
	}

	return analytics.Schedule{
		Name:           def.Name,
		Priority:       def.Priority,
		Type:           def.Type,
		ExecutionOrder: def.ExecutionOrder,
		Frequency:      frequency,
	}, nil
}

func (p Params) validate(kind Kind) error {
	switch kind {
	case KindHourly:
		return validation.ValidateStruct(&p,
			validation.Field(&p.IntervalHours, validation.Required),
		)
	case KindWeekly:
		return validation.ValidateStruct(&p,
			validation.Field(&p.Weekdays, validation.Required),
		)
	case KindMonthly:
		return validation.ValidateStruct(&p,
			validation.Field(&p.MonthDay, validation.Required),
		)
	}
	return nil
}
