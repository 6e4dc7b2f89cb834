package refresh

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/client/cmd/internal/survey"
	"github.com/odpf/tabctl/client/cmd/internal/term"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/core/extract"
)

type refreshCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags

	datasource  string
	interactive func() bool
}

// NewRefreshCommand initializes command to trigger an extract refresh
func NewRefreshCommand() *cobra.Command {
	refresh := &refreshCommand{
		logger:      logger.NewDefaultLogger(),
		printer:     logger.NewPrinter(),
		interactive: term.IsInteractive,
	}

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Trigger an extract refresh of a published datasource",
		Long: heredoc.Doc(`
			Signs into the server, looks up the datasource by its exact name and
			requests a refresh of its extract. Missing values are asked
			interactively when running in a terminal.`),
		Example: heredoc.Doc(`
			$ tabctl refresh -s https://tableau.example.com -S marketing -u analyst -w secret -d sales
			$ tabctl refresh -c tabctl.yaml -d sales
		`),
		PreRunE: refresh.PreRunE,
		RunE:    refresh.RunE,
	}
	refresh.injectFlags(cmd)
	return cmd
}

func (r *refreshCommand) injectFlags(cmd *cobra.Command) {
	r.flags.InjectCommonFlags(cmd)
	r.flags.InjectPasswordFlags(cmd)
	r.flags.InjectTokenFlags(cmd)
	cmd.Flags().StringVarP(&r.datasource, "datasource", "d", "", "Name of the datasource to refresh")
}

func (r *refreshCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := r.flags.Load(cmd); err != nil {
		return err
	}
	r.logger = r.flags.Logger()
	return nil
}

func (r *refreshCommand) RunE(cmd *cobra.Command, _ []string) error {
	creds := r.flags.Credentials()
	datasource := r.datasource

	if r.interactive() {
		var err error
		creds, datasource, err = r.askMissing(creds, datasource)
		if err != nil {
			return err
		}
	}

	refresher := extract.NewRefresher(r.flags.Service(r.logger), r.printer, r.logger)
	job, err := refresher.Refresh(cmd.Context(), extract.RefreshRequest{
		Credentials: creds,
		Datasource:  datasource,
	})
	if err != nil {
		return err
	}
	r.logger.Debug("refresh job enqueued", "job", job.ID, "mode", job.Mode)
	return nil
}

func (r *refreshCommand) askMissing(creds analytics.Credentials, datasource string) (analytics.Credentials, string, error) {
	credsSurvey := survey.NewCredentialsSurvey(r.logger)

	var err error
	if creds.Validate() != nil {
		useToken := creds.UsesToken()
		if !useToken && creds.Username == "" && creds.Password == "" {
			if useToken, err = credsSurvey.AskToUseToken(); err != nil {
				return creds, datasource, err
			}
		}
		if creds, err = credsSurvey.AskMissingCredentials(creds, useToken); err != nil {
			return creds, datasource, err
		}
	}

	if datasource == "" {
		if datasource, err = credsSurvey.AskDatasourceName(); err != nil {
			return creds, datasource, err
		}
	}
	return creds, datasource, nil
}
