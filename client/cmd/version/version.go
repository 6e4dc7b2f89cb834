package version

import (
	"context"
	"time"

	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/config"
)

const versionTimeout = time.Second * 2

type versionCommand struct {
	logger  log.Logger
	printer *logger.Printer
	flags   connection.Flags

	isWithServer bool
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	return newVersionCommand(logger.NewPrinter())
}

func newVersionCommand(printer *logger.Printer) *cobra.Command {
	v := &versionCommand{
		logger:  logger.NewDefaultLogger(),
		printer: printer,
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "tabctl version [--with-server]",
		RunE:    v.RunE,
		PreRunE: v.PreRunE,
	}

	v.injectFlags(cmd)

	return cmd
}

func (v *versionCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&v.isWithServer, "with-server", v.isWithServer, "Check for server version")
	v.flags.InjectCommonFlags(cmd)
}

func (v *versionCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	var required []string
	if v.isWithServer {
		required = append(required, connection.FlagServer)
	}
	if err := v.flags.Load(cmd, required...); err != nil {
		return err
	}
	v.logger = v.flags.Logger()
	return nil
}

func (v *versionCommand) RunE(cmd *cobra.Command, _ []string) error {
	// Print client version
	v.printer.Plain("Client: %s-%s\n", config.BuildVersion, config.BuildCommit)

	// Print server version
	if v.isWithServer {
		ctx, cancel := context.WithTimeout(cmd.Context(), versionTimeout)
		defer cancel()

		info, err := v.flags.Client(v.logger).ServerInfo(ctx, v.flags.Server)
		if err != nil {
			return err
		}
		v.printer.Plain("Server: %s (build %s), REST API %s\n", info.ProductVersion, info.Build, info.APIVersion)
	}
	return nil
}
