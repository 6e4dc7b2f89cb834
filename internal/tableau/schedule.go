package tableau

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/odpf/tabctl/core/analytics"
)

type interval struct {
	Hours    string `json:"hours,omitempty"`
	WeekDay  string `json:"weekDay,omitempty"`
	MonthDay string `json:"monthDay,omitempty"`
}

type intervals struct {
	Interval []interval `json:"interval"`
}

type frequencyDetails struct {
	Start     string     `json:"start"`
	End       string     `json:"end,omitempty"`
	Intervals *intervals `json:"intervals,omitempty"`
}

type scheduleItem struct {
	Name             string            `json:"name"`
	Priority         string            `json:"priority,omitempty"`
	Type             string            `json:"type,omitempty"`
	Frequency        string            `json:"frequency,omitempty"`
	ExecutionOrder   string            `json:"executionOrder,omitempty"`
	FrequencyDetails *frequencyDetails `json:"frequencyDetails,omitempty"`
}

type scheduleRequest struct {
	Schedule scheduleItem `json:"schedule"`
}

type scheduleResponse struct {
	Schedule struct {
		ID        string `json:"id"`
		State     string `json:"state"`
		NextRunAt string `json:"nextRunAt"`
	} `json:"schedule"`
}

// CreateSchedule returns the submitted descriptor completed with the server assigned id and state.
func (s *session) CreateSchedule(ctx context.Context, schedule analytics.Schedule) (analytics.Schedule, error) {
	item, err := toScheduleItem(schedule)
	if err != nil {
		return analytics.Schedule{}, err
	}

	var resp scheduleResponse
	err = s.client.invoke(ctx, request{
		method: http.MethodPost,
		url:    endpoint(s.server, s.version, "schedules"),
		token:  s.token,
		body:   scheduleRequest{Schedule: item},
	}, &resp)
	if err != nil {
		return analytics.Schedule{}, err
	}

	created := schedule
	created.ID = resp.Schedule.ID
	created.State = resp.Schedule.State
	created.NextRunAt = parseTimestamp(resp.Schedule.NextRunAt)
	return created, nil
}

func toScheduleItem(schedule analytics.Schedule) (scheduleItem, error) {
	if schedule.Frequency == nil {
		return scheduleItem{}, fmt.Errorf("schedule %s has no frequency", schedule.Name)
	}
	details := &frequencyDetails{Start: schedule.Frequency.StartTime().Clock()}

	var items []interval
	switch f := schedule.Frequency.(type) {
	case analytics.HourlyFrequency:
		details.End = f.End.Clock()
		items = append(items, interval{Hours: strconv.Itoa(f.IntervalHours)})
	case analytics.DailyFrequency:
	case analytics.WeeklyFrequency:
		for _, d := range f.Weekdays {
			items = append(items, interval{WeekDay: d.String()})
		}
	case analytics.MonthlyFrequency:
		items = append(items, interval{MonthDay: strconv.Itoa(f.MonthDay)})
	default:
		return scheduleItem{}, fmt.Errorf("unsupported frequency %T", f)
	}
	if len(items) > 0 {
		details.Intervals = &intervals{Interval: items}
	}

	return scheduleItem{
		Name:             schedule.Name,
		Priority:         strconv.Itoa(schedule.Priority),
		Type:             schedule.Type.String(),
		Frequency:        string(schedule.Frequency.Kind()),
		ExecutionOrder:   schedule.ExecutionOrder.String(),
		FrequencyDetails: details,
	}, nil
}
