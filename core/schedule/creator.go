package schedule

import (
	"context"

	"github.com/odpf/salt/log"

	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/internal/errors"
)

type Request struct {
	Kind   Kind
	Params Params
}

// DefaultRequests returns one request per kind, in creation order, with sample params.
func DefaultRequests() []Request {
	requests := make([]Request, len(Kinds))
	for i, k := range Kinds {
		requests[i] = Request{Kind: k, Params: DefaultParams(k)}
	}
	return requests
}

// Creator submits schedule descriptors. Each creation is isolated: a failure
// is reported and returned, but never stops the creations that follow.
type Creator struct {
	notifier analytics.Notifier
	logger   log.Logger
}

func NewCreator(notifier analytics.Notifier, logger log.Logger) *Creator {
	return &Creator{
		notifier: notifier,
		logger:   logger,
	}
}

func (c *Creator) Create(ctx context.Context, session analytics.Session, kind Kind, params Params) (analytics.Schedule, error) {
	descriptor, err := Build(kind, params)
	if err != nil {
		c.notifier.Error("Error creating %s schedule: %s", kind, err)
		return analytics.Schedule{}, errors.Reported(err)
	}

	c.logger.Debug("creating schedule", "name", descriptor.Name, "frequency", string(descriptor.Frequency.Kind()))
	created, err := session.CreateSchedule(ctx, descriptor)
	if err != nil {
		c.notifier.Error("Error creating %s schedule: %s", kind, err)
		return analytics.Schedule{}, errors.Reported(err)
	}

	c.notifier.Success("%s schedule created (ID: %s).", kind.Title(), created.ID)
	return created, nil
}

// CreateAll attempts every request in order and returns the collected failures.
func (c *Creator) CreateAll(ctx context.Context, session analytics.Session, requests []Request) error {
	me := errors.NewMultiError("error creating schedules")
	for _, req := range requests {
		_, err := c.Create(ctx, session, req.Kind, req.Params)
		me.Append(err)
	}
	if err := errors.MultiToError(me); err != nil {
		return errors.Reported(err)
	}
	return nil
}

// SignInAndCreate opens a session for this action only. Nothing is created when sign in fails.
func (c *Creator) SignInAndCreate(ctx context.Context, service analytics.Service, creds analytics.Credentials, requests []Request) error {
	if err := creds.ValidateToken(); err != nil {
		c.notifier.Error(analytics.MissingFieldsMessage)
		return errors.Reported(err)
	}

	session, err := service.SignIn(ctx, creds)
	if err != nil {
		c.notifier.Error("Sign-in failed: %s", err)
		return errors.Reported(errors.FailedPrecondition(analytics.EntityCredentials, "sign in failed", err))
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			c.logger.Warn("unable to sign out", "err", err.Error())
		}
	}()

	return c.CreateAll(ctx, session, requests)
}
