package logger

import (
	"fmt"
	"sort"

	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/odpf/tabctl/config"
)

type plainFormatter int

func (*plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for key := range entry.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var data string
		for _, key := range keys {
			data += fmt.Sprintf("%s: %v ", key, entry.Data[key])
		}
		return []byte(fmt.Sprintf("%s: %s %s\n", entry.Level, entry.Message, data)), nil
	}
	return []byte(fmt.Sprintf("%s: %s\n", entry.Level, entry.Message)), nil
}

// NewDefaultLogger initialzes plain logger at the default error level
func NewDefaultLogger() log.Logger {
	return NewClientLogger(config.LogLevelError)
}

// NewClientLogger initializes the diagnostic logger, written to stderr
func NewClientLogger(level config.LogLevel) log.Logger {
	if level == "" {
		level = config.LogLevelError
	}
	return log.NewLogrus(
		log.LogrusWithLevel(level.String()),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}
