package analytics

import (
	"context"
	"time"
)

const (
	EntityCredentials = "credentials"
	EntityDatasource  = "datasource"
	EntitySchedule    = "schedule"
)

// Service signs in to an analytics server.
type Service interface {
	SignIn(ctx context.Context, creds Credentials) (Session, error)
}

// Session is an authenticated conversation with an analytics server.
// Callers must sign out once they are done with it.
type Session interface {
	Datasources(ctx context.Context) ([]Datasource, error)
	RefreshDatasource(ctx context.Context, datasource Datasource) (Job, error)
	CreateSchedule(ctx context.Context, schedule Schedule) (Schedule, error)
	SignOut(ctx context.Context) error
}

// Notifier renders the outcome of an action as text banners.
type Notifier interface {
	Info(msg string, args ...interface{})
	Success(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type Datasource struct {
	ID          string
	Name        string
	ContentURL  string
	Type        string
	ProjectName string
	UpdatedAt   time.Time
}

// Job is a server side asynchronous unit of work, its completion is not tracked.
type Job struct {
	ID        string
	Mode      string
	Type      string
	CreatedAt time.Time
}
