package schedule

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/core/schedule"
)

type createCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags

	kind schedule.Kind
	raw  schedule.RawParams
}

// NewCreateCommand initializes command to create a single schedule of kind
func NewCreateCommand(kind schedule.Kind) *cobra.Command {
	create := &createCommand{
		logger:  logger.NewDefaultLogger(),
		printer: logger.NewPrinter(),
		kind:    kind,
	}

	def, _ := schedule.DefinitionOf(kind)
	cmd := &cobra.Command{
		Use:     kind.String(),
		Short:   fmt.Sprintf("Create the %s", def.Name),
		Example: createExample(kind),
		PreRunE: create.PreRunE,
		RunE:    create.RunE,
	}
	create.injectFlags(cmd)
	return cmd
}

func createExample(kind schedule.Kind) string {
	switch kind {
	case schedule.KindHourly:
		return heredoc.Doc(`
			$ tabctl schedule hourly --start 02:30 --end 23:00 --interval 2
		`)
	case schedule.KindWeekly:
		return heredoc.Doc(`
			$ tabctl schedule weekly --start 19:15 --weekdays Monday,Wednesday,Friday
		`)
	case schedule.KindMonthly:
		return heredoc.Doc(`
			$ tabctl schedule monthly --start 23:30 --day 15
		`)
	}
	return fmt.Sprintf("$ tabctl schedule %s --start 05:00\n", kind)
}

func (c *createCommand) injectFlags(cmd *cobra.Command) {
	injectConnectionFlags(cmd, &c.flags)

	defaults := schedule.DefaultRawParams(c.kind)
	cmd.Flags().StringVar(&c.raw.Start, "start", defaults.Start, "Start time of day, HH:MM")
	switch c.kind {
	case schedule.KindHourly:
		cmd.Flags().StringVar(&c.raw.End, "end", defaults.End, "End time of day, HH:MM")
		cmd.Flags().IntVar(&c.raw.Interval, "interval", defaults.Interval, "Hours between runs")
	case schedule.KindWeekly:
		cmd.Flags().StringSliceVar(&c.raw.Weekdays, "weekdays", defaults.Weekdays, "Days of the week to run on")
	case schedule.KindMonthly:
		cmd.Flags().IntVar(&c.raw.MonthDay, "day", defaults.MonthDay, "Day of the month to run on")
	}
}

func (c *createCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := c.flags.Load(cmd, requiredWithoutConfig...); err != nil {
		return err
	}
	c.logger = c.flags.Logger()
	return nil
}

func (c *createCommand) RunE(cmd *cobra.Command, _ []string) error {
	params, err := schedule.ParseParams(c.kind, c.raw)
	if err != nil {
		return err
	}

	creator := schedule.NewCreator(c.printer, c.logger)
	return creator.SignInAndCreate(cmd.Context(), c.flags.Service(c.logger), c.flags.TokenCredentials(),
		[]schedule.Request{{Kind: c.kind, Params: params}})
}

type createAllCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags
}

// NewCreateAllCommand initializes command to create every schedule kind with sample timings
func NewCreateAllCommand() *cobra.Command {
	all := &createAllCommand{
		logger:  logger.NewDefaultLogger(),
		printer: logger.NewPrinter(),
	}

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Create the hourly, daily, weekly and monthly schedules in order",
		Long: heredoc.Doc(`
			Creates the four schedules with their sample timings. A failing
			creation is reported and does not stop the ones that follow.`),
		Example: "$ tabctl schedule all -c tabctl.yaml",
		PreRunE: all.PreRunE,
		RunE:    all.RunE,
	}
	injectConnectionFlags(cmd, &all.flags)
	return cmd
}

func (a *createAllCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if err := a.flags.Load(cmd, requiredWithoutConfig...); err != nil {
		return err
	}
	a.logger = a.flags.Logger()
	return nil
}

func (a *createAllCommand) RunE(cmd *cobra.Command, _ []string) error {
	creator := schedule.NewCreator(a.printer, a.logger)
	return creator.SignInAndCreate(cmd.Context(), a.flags.Service(a.logger), a.flags.TokenCredentials(),
		schedule.DefaultRequests())
}
