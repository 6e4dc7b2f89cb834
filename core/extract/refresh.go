package extract

import (
	"context"
	"fmt"

	"github.com/odpf/salt/log"
	"github.com/samber/lo"

	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/internal/errors"
)

type RefreshRequest struct {
	Credentials analytics.Credentials
	Datasource  string
}

func (r RefreshRequest) Validate() error {
	if r.Datasource == "" {
		return errors.InvalidArgument(analytics.EntityDatasource, "datasource name is empty")
	}
	return r.Credentials.Validate()
}

// Refresher triggers an extract refresh for a datasource found by exact name.
type Refresher struct {
	service  analytics.Service
	notifier analytics.Notifier
	logger   log.Logger
}

func NewRefresher(service analytics.Service, notifier analytics.Notifier, logger log.Logger) *Refresher {
	return &Refresher{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// Refresh returns the enqueued job. Every outcome is also rendered through the notifier,
// so returned errors are already reported.
func (r *Refresher) Refresh(ctx context.Context, req RefreshRequest) (analytics.Job, error) {
	if err := req.Validate(); err != nil {
		r.notifier.Error(analytics.MissingFieldsMessage)
		return analytics.Job{}, errors.Reported(err)
	}

	session, err := r.service.SignIn(ctx, req.Credentials)
	if err != nil {
		return analytics.Job{}, r.fail(err)
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			r.logger.Warn("unable to sign out", "err", err.Error())
		}
	}()

	datasources, err := session.Datasources(ctx)
	if err != nil {
		return analytics.Job{}, r.fail(err)
	}
	r.logger.Debug("datasources fetched", "count", len(datasources))

	datasource, found := FindByName(datasources, req.Datasource)
	if !found {
		r.notifier.Error("Datasource '%s' not found.", req.Datasource)
		return analytics.Job{}, errors.Reported(errors.NotFound(analytics.EntityDatasource,
			fmt.Sprintf("datasource %s not found", req.Datasource)))
	}

	r.notifier.Info("Refreshing extract for datasource: %s", datasource.Name)
	job, err := session.RefreshDatasource(ctx, datasource)
	if err != nil {
		return analytics.Job{}, r.fail(err)
	}

	r.notifier.Success("Refresh job %s has been triggered successfully.", job.ID)
	return job, nil
}

func (r *Refresher) fail(err error) error {
	r.notifier.Error("An error occurred: %s", err)
	return errors.Reported(err)
}

// FindByName returns the first datasource whose name equals name, case-sensitively.
func FindByName(datasources []analytics.Datasource, name string) (analytics.Datasource, bool) {
	return lo.Find(datasources, func(ds analytics.Datasource) bool {
		return ds.Name == name
	})
}
