package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/odpf/tabctl/internal/errors"
)

const (
	ScheduleTypeExtract      ScheduleType = "Extract"
	ScheduleTypeSubscription ScheduleType = "Subscription"

	ExecutionOrderSerial   ExecutionOrder = "Serial"
	ExecutionOrderParallel ExecutionOrder = "Parallel"
)

type ScheduleType string

func (t ScheduleType) String() string {
	return string(t)
}

type ExecutionOrder string

func (o ExecutionOrder) String() string {
	return string(o)
}

// Schedule is handed whole to the server, which owns validation and the identifier.
type Schedule struct {
	ID             string
	Name           string
	Priority       int
	Type           ScheduleType
	ExecutionOrder ExecutionOrder
	Frequency      Frequency

	State     string
	NextRunAt time.Time
}

type FrequencyKind string

const (
	FrequencyHourly  FrequencyKind = "Hourly"
	FrequencyDaily   FrequencyKind = "Daily"
	FrequencyWeekly  FrequencyKind = "Weekly"
	FrequencyMonthly FrequencyKind = "Monthly"
)

// Frequency is one of HourlyFrequency, DailyFrequency, WeeklyFrequency or MonthlyFrequency.
type Frequency interface {
	Kind() FrequencyKind
	StartTime() TimeOfDay
}

type HourlyFrequency struct {
	Start         TimeOfDay
	End           TimeOfDay
	IntervalHours int
}

func (HourlyFrequency) Kind() FrequencyKind    { return FrequencyHourly }
func (f HourlyFrequency) StartTime() TimeOfDay { return f.Start }

type DailyFrequency struct {
	Start TimeOfDay
}

func (DailyFrequency) Kind() FrequencyKind    { return FrequencyDaily }
func (f DailyFrequency) StartTime() TimeOfDay { return f.Start }

type WeeklyFrequency struct {
	Start    TimeOfDay
	Weekdays []time.Weekday
}

func (WeeklyFrequency) Kind() FrequencyKind    { return FrequencyWeekly }
func (f WeeklyFrequency) StartTime() TimeOfDay { return f.Start }

// MonthlyFrequency runs on MonthDay of every month.
type MonthlyFrequency struct {
	Start    TimeOfDay
	MonthDay int
}

func (MonthlyFrequency) Kind() FrequencyKind    { return FrequencyMonthly }
func (f MonthlyFrequency) StartTime() TimeOfDay { return f.Start }

type TimeOfDay struct {
	Hour   int
	Minute int
}

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, errors.InvalidArgument(EntitySchedule, "invalid time of day "+value+", expected HH:MM")
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Clock formats the time as HH:MM:SS.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

func ParseWeekday(value string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(value, name) || strings.EqualFold(value, name[:3]) {
			return d, nil
		}
	}
	return time.Sunday, errors.InvalidArgument(EntitySchedule, "invalid weekday "+value)
}

func ParseWeekdays(values []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		d, err := ParseWeekday(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
