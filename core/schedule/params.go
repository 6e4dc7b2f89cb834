package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/odpf/tabctl/core/analytics"
)

// RawParams is the textual form of Params as typed by an operator.
type RawParams struct {
	Start    string
	End      string
	Interval int
	Weekdays []string
	MonthDay int
}

// DefaultRawParams renders DefaultParams(kind) back to text, used as input defaults.
func DefaultRawParams(kind Kind) RawParams {
	p := DefaultParams(kind)
	raw := RawParams{
		Start:    p.Start.String(),
		Interval: p.IntervalHours,
		MonthDay: p.MonthDay,
		Weekdays: lo.Map(p.Weekdays, func(d time.Weekday, _ int) string {
			return d.String()
		}),
	}
	if kind == KindHourly {
		raw.End = p.End.String()
	}
	return raw
}

// ParseParams parses only the inputs used by kind.
func ParseParams(kind Kind, raw RawParams) (Params, error) {
	if _, err := DefinitionOf(kind); err != nil {
		return Params{}, err
	}

	start, err := analytics.ParseTimeOfDay(raw.Start)
	if err != nil {
		return Params{}, err
	}
	params := Params{Start: start}

	switch kind {
	case KindHourly:
		end, err := analytics.ParseTimeOfDay(raw.End)
		if err != nil {
			return Params{}, err
		}
		params.End = end
		params.IntervalHours = raw.Interval
	case KindWeekly:
		weekdays, err := analytics.ParseWeekdays(raw.Weekdays)
		if err != nil {
			return Params{}, err
		}
		params.Weekdays = weekdays
	case KindMonthly:
		params.MonthDay = raw.MonthDay
	}
	return params, nil
}

// SplitList splits a comma separated answer, dropping blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	return lo.Filter(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}), func(p string, _ int) bool {
		return p != ""
	})
}

// Atoi parses a numeric answer.
func Atoi(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}
