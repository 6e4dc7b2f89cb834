package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/cmdx"
	cli "github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/datasource"
	"github.com/odpf/tabctl/client/cmd/refresh"
	"github.com/odpf/tabctl/client/cmd/schedule"
	"github.com/odpf/tabctl/client/cmd/version"
)

// New constructs the 'root' command. It houses all other sub commands
// banners and menus go to stdout
// diagnostic logs and spinners go to stderr
// unless the stdout/err is a tty, colors/spinners should be disabled
func New() *cli.Command {
	cmd := &cli.Command{
		Use: "tabctl <command> <subcommand> [flags]",
		Long: heredoc.Doc(`
			tabctl signs into a Tableau server, triggers extract refreshes of
			published datasources and creates refresh and subscription schedules.

			Connection values can be passed as flags, through tabctl.yaml or
			through environment variables prefixed with TABCTL_, e.g.
			TABCTL_AUTH_TOKEN_VALUE.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
				$ tabctl refresh -s https://tableau.example.com -u analyst -d sales
				$ tabctl schedule menu
				$ tabctl schedule weekly --weekdays Monday,Thursday
				$ tabctl datasource list
			`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'tabctl <command> <subcommand> --help' for more information about a command.
			`),
		},
	}

	cmdx.SetHelp(cmd)

	cmd.AddCommand(
		refresh.NewRefreshCommand(),
		schedule.NewScheduleCommand(),
		datasource.NewDatasourceCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}
