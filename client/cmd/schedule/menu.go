package schedule

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/core/schedule"
	"github.com/odpf/tabctl/internal/errors"
)

const (
	menuHeader = `
Scheduler Creation Menu
1. Create Hourly Schedule
2. Create Daily Schedule
3. Create Weekly Schedule
4. Create Monthly Schedule
5. Create All Schedules
6. Exit
`
	menuPrompt = "Enter your choice (1-6): "

	choiceAll  = "5"
	choiceExit = "6"
)

var menuChoices = map[string]schedule.Kind{
	"1": schedule.KindHourly,
	"2": schedule.KindDaily,
	"3": schedule.KindWeekly,
	"4": schedule.KindMonthly,
}

type menuCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags
	in      io.Reader
}

// NewMenuCommand initializes the numbered schedule creation menu
func NewMenuCommand() *cobra.Command {
	menu := &menuCommand{
		logger:  logger.NewDefaultLogger(),
		printer: logger.NewPrinter(),
		in:      os.Stdin,
	}

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Create schedules from a numbered menu",
		Long: heredoc.Doc(`
			Signs in once and keeps the session while choices are read from
			standard input. Choice 6 or end of input leaves the menu.`),
		Example: "$ tabctl schedule menu -s https://tableau.example.com -p ci-token -v secret",
		PreRunE: menu.PreRunE,
		RunE:    menu.RunE,
	}
	injectConnectionFlags(cmd, &menu.flags)
	return cmd
}

func (m *menuCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := m.flags.Load(cmd, requiredWithoutConfig...); err != nil {
		return err
	}
	m.logger = m.flags.Logger()
	return nil
}

func (m *menuCommand) RunE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	creds := m.flags.TokenCredentials()
	if err := creds.ValidateToken(); err != nil {
		m.printer.Error(analytics.MissingFieldsMessage)
		return errors.Reported(err)
	}

	session, err := m.flags.Service(m.logger).SignIn(ctx, creds)
	if err != nil {
		m.printer.Error("Sign-in failed: %s", err)
		return errors.Reported(errors.FailedPrecondition(analytics.EntityCredentials, "sign in failed", err))
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			m.logger.Warn("unable to sign out", "err", err.Error())
		}
	}()

	return runMenu(ctx, m.in, m.printer, schedule.NewCreator(m.printer, m.logger), session)
}

// runMenu reads choices until exit or end of input. Failed creations are
// already shown by the creator and keep the loop going.
func runMenu(ctx context.Context, in io.Reader, printer *logger.Printer, creator *schedule.Creator, session analytics.Session) error {
	printer.Plain(menuHeader)

	scanner := bufio.NewScanner(in)
	for {
		printer.Plain(menuPrompt)
		if !scanner.Scan() {
			printer.Plain("\n")
			return scanner.Err()
		}

		choice := strings.TrimSpace(scanner.Text())
		if kind, ok := menuChoices[choice]; ok {
			_, _ = creator.Create(ctx, session, kind, schedule.DefaultParams(kind))
			continue
		}

		switch choice {
		case choiceAll:
			_ = creator.CreateAll(ctx, session, schedule.DefaultRequests())
		case choiceExit:
			printer.Plain("Exiting...\n")
			return nil
		default:
			printer.Error("Invalid choice, please try again.")
		}
	}
}
