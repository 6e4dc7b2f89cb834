package datasource

import (
	"bytes"
	"context"
	"time"

	"github.com/odpf/salt/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/internal/errors"
)

type listCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags
}

// NewListCommand initializes command for listing datasources of a site
func NewListCommand() *cobra.Command {
	list := &listCommand{
		logger:  logger.NewDefaultLogger(),
		printer: logger.NewPrinter(),
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List datasources visible to the signed in user",
		Example: "$ tabctl datasource list -s https://tableau.example.com -S marketing -p ci-token -v secret",
		PreRunE: list.PreRunE,
		RunE:    list.RunE,
	}
	list.flags.InjectCommonFlags(cmd)
	list.flags.InjectPasswordFlags(cmd)
	list.flags.InjectTokenFlags(cmd)
	return cmd
}

func (l *listCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := l.flags.Load(cmd, connection.FlagServer); err != nil {
		return err
	}
	l.logger = l.flags.Logger()
	return nil
}

func (l *listCommand) RunE(cmd *cobra.Command, _ []string) error {
	creds := l.flags.Credentials()
	if err := creds.Validate(); err != nil {
		l.printer.Error(analytics.MissingFieldsMessage)
		return errors.Reported(err)
	}

	datasources, err := l.fetch(cmd.Context(), creds)
	if err != nil {
		l.printer.Error("An error occurred: %s", err)
		return errors.Reported(err)
	}

	l.printDatasources(datasources)
	return nil
}

func (l *listCommand) printDatasources(datasources []analytics.Datasource) {
	if len(datasources) == 0 {
		l.printer.Info("No datasources were found.")
		return
	}
	l.printer.Print(stringifyDatasources(datasources))
}

func (l *listCommand) fetch(ctx context.Context, creds analytics.Credentials) ([]analytics.Datasource, error) {
	session, err := l.flags.Service(l.logger).SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			l.logger.Warn("unable to sign out", "err", err.Error())
		}
	}()
	return session.Datasources(ctx)
}

func stringifyDatasources(datasources []analytics.Datasource) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetBorder(false)
	table.SetHeader([]string{
		"Name",
		"Project",
		"Type",
		"ID",
		"Updated",
	})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, ds := range datasources {
		updated := ""
		if !ds.UpdatedAt.IsZero() {
			updated = ds.UpdatedAt.Format(time.RFC3339)
		}
		table.Append([]string{
			ds.Name,
			ds.ProjectName,
			ds.Type,
			ds.ID,
			updated,
		})
	}
	table.Render()
	return buff.String()
}
