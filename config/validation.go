package config

import (
	"net/url"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate validate the config as an input. If not valid, it returns error
func Validate(conf *ClientConfig) error {
	return validation.ValidateStruct(conf,
		validation.Field(&conf.Server, validation.By(validateServer)),
		nestedFields(&conf.Log,
			validation.Field(&conf.Log.Level, validation.In(
				LogLevelDebug,
				LogLevelInfo,
				LogLevelError,
			)),
		),
		validation.Field(&conf.RequestsPerSecond, validation.Min(0.0)),
	)
}

// ValidateLogLevel checks a level given on the command line.
func ValidateLogLevel(level string) error {
	return validation.Validate(LogLevel(level), validation.Required, validation.In(
		LogLevelDebug,
		LogLevelInfo,
		LogLevelError,
	))
}

func validateServer(value interface{}) error {
	server, _ := value.(string)
	if server == "" {
		return nil
	}
	u, err := url.Parse(server)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_server_scheme", "must be an http or https url")
	}
	return nil
}

// ozzo-validation helper for nested validation struct
// https://github.com/go-ozzo/ozzo-validation/issues/136
func nestedFields(target interface{}, fieldRules ...*validation.FieldRules) *validation.FieldRules {
	return validation.Field(target, validation.By(func(value interface{}) error {
		valueV := reflect.Indirect(reflect.ValueOf(value))
		if valueV.CanAddr() {
			addr := valueV.Addr().Interface()
			return validation.ValidateStruct(addr, fieldRules...)
		}
		return validation.ValidateStruct(target, fieldRules...)
	}))
}
