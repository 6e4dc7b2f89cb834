package config

import "strconv"

// Version implement fmt.Stringer
type Version int

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

// LogLevels are the accepted values of the logging level, in increasing severity.
var LogLevels = []string{LogLevelDebug.String(), LogLevelInfo.String(), LogLevelError.String()}

func (l LogLevel) String() string {
	return string(l)
}

type LogConfig struct {
	Level LogLevel `mapstructure:"level" default:"error"` // log level - debug, info, error
}

type ClientConfig struct {
	Version Version   `mapstructure:"version"`
	Log     LogConfig `mapstructure:"log"`

	Server     string `mapstructure:"server"`      // analytics server address
	Site       string `mapstructure:"site"`        // site content url, empty for the default site
	APIVersion string `mapstructure:"api_version"` // REST API version, detected when empty
	Insecure   bool   `mapstructure:"insecure"`    // skip TLS certificate verification

	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	Auth Auth `mapstructure:"auth"`
}

type Auth struct {
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	TokenName  string `mapstructure:"token_name"`
	TokenValue string `mapstructure:"token_value"`
}
