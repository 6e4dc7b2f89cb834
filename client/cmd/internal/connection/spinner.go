package connection

import (
	"context"

	"github.com/odpf/tabctl/client/cmd/internal/progressbar"
	"github.com/odpf/tabctl/core/analytics"
)

type spinningService struct {
	service analytics.Service
	bar     *progressbar.ProgressBar
}

func NewSpinningService(service analytics.Service, bar *progressbar.ProgressBar) analytics.Service {
	return &spinningService{service: service, bar: bar}
}

func (s *spinningService) SignIn(ctx context.Context, creds analytics.Credentials) (analytics.Session, error) {
	s.bar.Start("signing in...")
	session, err := s.service.SignIn(ctx, creds)
	s.bar.Stop()
	if err != nil {
		return nil, err
	}
	return &spinningSession{session: session, bar: s.bar}, nil
}

type spinningSession struct {
	session analytics.Session
	bar     *progressbar.ProgressBar
}

func (s *spinningSession) Datasources(ctx context.Context) ([]analytics.Datasource, error) {
	s.bar.Start("fetching datasources...")
	defer s.bar.Stop()
	return s.session.Datasources(ctx)
}

func (s *spinningSession) RefreshDatasource(ctx context.Context, datasource analytics.Datasource) (analytics.Job, error) {
	s.bar.Start("requesting refresh...")
	defer s.bar.Stop()
	return s.session.RefreshDatasource(ctx, datasource)
}

func (s *spinningSession) CreateSchedule(ctx context.Context, schedule analytics.Schedule) (analytics.Schedule, error) {
	s.bar.Start("creating " + schedule.Name + "...")
	defer s.bar.Stop()
	return s.session.CreateSchedule(ctx, schedule)
}

func (s *spinningSession) SignOut(ctx context.Context) error {
	return s.session.SignOut(ctx)
}
