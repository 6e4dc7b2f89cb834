package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/odpf/tabctl/client/cmd"
	tabctlErrors "github.com/odpf/tabctl/internal/errors"
)

var errRequestFail = errors.New("unable to complete request successfully")

func main() {
	command := cmd.New()
	if err := command.Execute(); err != nil {
		if !tabctlErrors.IsReported(err) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
		fmt.Fprintln(os.Stderr, errRequestFail)
		os.Exit(1)
	}
}
