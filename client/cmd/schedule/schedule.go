package schedule

import (
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/core/schedule"
)

// NewScheduleCommand initializes command for schedule creation
func NewScheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Create extract refresh and subscription schedules",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}

	cmd.AddCommand(NewMenuCommand())
	for _, kind := range schedule.Kinds {
		cmd.AddCommand(NewCreateCommand(kind))
	}
	cmd.AddCommand(
		NewCreateAllCommand(),
		NewFormCommand(),
	)
	return cmd
}

// injectConnectionFlags adds the flags every schedule command signs in with
func injectConnectionFlags(cmd *cobra.Command, flags *connection.Flags) {
	flags.InjectCommonFlags(cmd)
	flags.InjectTokenFlags(cmd)
}

var requiredWithoutConfig = []string{
	connection.FlagServer,
	connection.FlagTokenName,
	connection.FlagTokenValue,
}
