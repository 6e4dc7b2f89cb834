package datasource

import (
	"github.com/spf13/cobra"
)

// NewDatasourceCommand initializes command for datasources
func NewDatasourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasource",
		Short: "Commands that will let the user inspect published datasources",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}
	cmd.AddCommand(NewListCommand())
	return cmd
}
