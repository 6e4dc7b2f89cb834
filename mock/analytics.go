package mock

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/odpf/tabctl/core/analytics"
)

type AnalyticsService struct {
	mock.Mock
}

func (s *AnalyticsService) SignIn(ctx context.Context, creds analytics.Credentials) (analytics.Session, error) {
	args := s.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(analytics.Session), args.Error(1)
}

type AnalyticsSession struct {
	mock.Mock
}

func (s *AnalyticsSession) Datasources(ctx context.Context) ([]analytics.Datasource, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.Datasource), args.Error(1)
}

func (s *AnalyticsSession) RefreshDatasource(ctx context.Context, datasource analytics.Datasource) (analytics.Job, error) {
	args := s.Called(ctx, datasource)
	return args.Get(0).(analytics.Job), args.Error(1)
}

func (s *AnalyticsSession) CreateSchedule(ctx context.Context, schedule analytics.Schedule) (analytics.Schedule, error) {
	args := s.Called(ctx, schedule)
	return args.Get(0).(analytics.Schedule), args.Error(1)
}

func (s *AnalyticsSession) SignOut(ctx context.Context) error {
	return s.Called(ctx).Error(0)
}

// Notifier records rendered banners.
type Notifier struct {
	Infos     []string
	Successes []string
	Errors    []string
}

func (n *Notifier) Info(msg string, args ...interface{}) {
	n.Infos = append(n.Infos, fmt.Sprintf(msg, args...))
}

func (n *Notifier) Success(msg string, args ...interface{}) {
	n.Successes = append(n.Successes, fmt.Sprintf(msg, args...))
}

func (n *Notifier) Error(msg string, args ...interface{}) {
	n.Errors = append(n.Errors, fmt.Sprintf(msg, args...))
}
