package schedule

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/client/cmd/internal/survey"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/core/schedule"
	"github.com/odpf/tabctl/internal/errors"
)

type formCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags
}

// NewFormCommand initializes the interactive schedule form
func NewFormCommand() *cobra.Command {
	form := &formCommand{
		logger:  logger.NewDefaultLogger(),
		printer: logger.NewPrinter(),
	}

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Create schedules through an interactive form",
		Long: heredoc.Doc(`
			Asks for missing connection values, the schedules to create and
			their timings. Every submission signs in on its own.`),
		Example: "$ tabctl schedule form -s https://tableau.example.com",
		PreRunE: form.PreRunE,
		RunE:    form.RunE,
	}
	injectConnectionFlags(cmd, &form.flags)
	return cmd
}

func (f *formCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := f.flags.Load(cmd); err != nil {
		return err
	}
	f.logger = f.flags.Logger()
	return nil
}

func (f *formCommand) RunE(cmd *cobra.Command, _ []string) error {
	credsSurvey := survey.NewCredentialsSurvey(f.logger)
	scheduleSurvey := survey.NewScheduleSurvey(f.logger)

	creds, err := credsSurvey.AskMissingCredentials(f.flags.TokenCredentials(), true)
	if err != nil {
		return err
	}

	kinds, err := scheduleSurvey.AskToSelectKinds()
	if err != nil {
		return err
	}
	requests := make([]schedule.Request, 0, len(kinds))
	for _, kind := range kinds {
		params, err := scheduleSurvey.AskParams(kind)
		if err != nil {
			return err
		}
		requests = append(requests, schedule.Request{Kind: kind, Params: params})
	}

	service := f.flags.Service(f.logger)
	creator := schedule.NewCreator(f.printer, f.logger)
	for {
		err := creator.SignInAndCreate(cmd.Context(), service, creds, requests)
		if !errors.IsErrorType(err, errors.ErrFailedPrecond) {
			return err
		}

		retry, askErr := survey.AskToConfirm("Sign in again with other credentials?")
		if askErr != nil || !retry {
			return err
		}
		creds, err = credsSurvey.AskMissingCredentials(analytics.Credentials{Server: creds.Server, Site: creds.Site}, true)
		if err != nil {
			return err
		}
	}
}
