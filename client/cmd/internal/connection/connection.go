package connection

import (
	"crypto/tls"
	"net/http"

	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/tabctl/client/cmd/internal"
	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/client/cmd/internal/progressbar"
	"github.com/odpf/tabctl/config"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/internal/tableau"
)

const (
	FlagServer     = "server"
	FlagSite       = "site"
	FlagUsername   = "username"
	FlagPassword   = "password"
	FlagTokenName  = "token-name"
	FlagTokenValue = "token-value"
	FlagLogLevel   = "logging-level"
)

// Flags holds connection input of a command, values missing on the command line are taken from config.
type Flags struct {
	ConfigFilePath string
	LogLevel       string

	Server     string
	Site       string
	Username   string
	Password   string
	TokenName  string
	TokenValue string
	Insecure   bool

	apiVersion        string
	requestsPerSecond float64
}

func (f *Flags) InjectCommonFlags(cmd *cobra.Command) {
	// Config filepath flag
	cmd.Flags().StringVarP(&f.ConfigFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&f.LogLevel, FlagLogLevel, "l", config.LogLevelError.String(), "Desired logging level (debug, info, error)")

	cmd.Flags().StringVarP(&f.Server, FlagServer, "s", "", "Server address")
	cmd.Flags().StringVarP(&f.Site, FlagSite, "S", "", "Site name, empty for the default site")
	cmd.Flags().BoolVar(&f.Insecure, "insecure", false, "Skip TLS certificate verification")
}

func (f *Flags) InjectPasswordFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Username, FlagUsername, "u", "", "Username used to sign into the server")
	cmd.Flags().StringVarP(&f.Password, FlagPassword, "w", "", "Password used to sign into the server")
}

func (f *Flags) InjectTokenFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.TokenName, FlagTokenName, "p", "", "Name of the personal access token used to sign into the server")
	cmd.Flags().StringVarP(&f.TokenValue, FlagTokenValue, "v", "", "Value of the personal access token used to sign into the server")
}

// Load fills missing values from the config file. Without a config file the
// given flags become mandatory.
func (f *Flags) Load(cmd *cobra.Command, requiredWithoutConfig ...string) error {
	conf, err := config.LoadOptionalConfig(f.ConfigFilePath)
	if err != nil {
		return err
	}

	if conf == nil {
		internal.MarkFlagsRequired(cmd, requiredWithoutConfig)
		return config.ValidateLogLevel(f.LogLevel)
	}

	if !cmd.Flags().Changed(FlagLogLevel) && conf.Log.Level != "" {
		f.LogLevel = conf.Log.Level.String()
	}
	if f.Server == "" {
		f.Server = conf.Server
	}
	if f.Site == "" {
		f.Site = conf.Site
	}
	if f.Username == "" {
		f.Username = conf.Auth.Username
	}
	if f.Password == "" {
		f.Password = conf.Auth.Password
	}
	// explicit username or password flags select password sign in over a configured token
	passwordFlagged := cmd.Flags().Changed(FlagUsername) || cmd.Flags().Changed(FlagPassword)
	if f.TokenName == "" && !passwordFlagged {
		f.TokenName = conf.Auth.TokenName
	}
	if f.TokenValue == "" && !passwordFlagged {
		f.TokenValue = conf.Auth.TokenValue
	}
	if !f.Insecure {
		f.Insecure = conf.Insecure
	}
	f.apiVersion = conf.APIVersion
	f.requestsPerSecond = conf.RequestsPerSecond
	return config.ValidateLogLevel(f.LogLevel)
}

func (f *Flags) Credentials() analytics.Credentials {
	return analytics.Credentials{
		Server:     f.Server,
		Site:       f.Site,
		Username:   f.Username,
		Password:   f.Password,
		TokenName:  f.TokenName,
		TokenValue: f.TokenValue,
	}
}

// TokenCredentials drops username and password so token rules apply.
func (f *Flags) TokenCredentials() analytics.Credentials {
	creds := f.Credentials()
	creds.Username = ""
	creds.Password = ""
	return creds
}

func (f *Flags) Logger() log.Logger {
	return logger.NewClientLogger(config.LogLevel(f.LogLevel))
}

// Client builds the REST client for the configured server.
func (f *Flags) Client(l log.Logger) *tableau.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if f.Insecure {
		l.Warn("TLS certificate verification is disabled")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	opts := []tableau.Option{
		tableau.WithHTTPClient(&http.Client{Transport: transport}),
		tableau.WithLogger(l),
		tableau.WithRequestsPerSecond(f.requestsPerSecond),
	}
	if f.apiVersion != "" {
		opts = append(opts, tableau.WithAPIVersion(f.apiVersion))
	}
	return tableau.NewClient(opts...)
}

// Service builds the analytics service, showing a spinner on terminals while calls are in flight.
func (f *Flags) Service(l log.Logger) analytics.Service {
	return NewSpinningService(f.Client(l), progressbar.NewProgressBar())
}
