package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/odpf/salt/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultFilename      = "tabctl"
	DefaultFileExtension = "yaml"
	DefaultEnvPrefix     = "TABCTL"
	EmptyPath            = ""
)

var FS = afero.NewReadOnlyFs(afero.NewOsFs())

// LoadClientConfig load the client config from these locations:
// 1. filepath. ./tabctl <command> -c "path/to/config/tabctl.yaml"
// 2. current dir. tabctl will look at current directory if there's tabctl.yaml there, use it
// Values can be overridden by env vars, e.g. TABCTL_AUTH_TOKEN_VALUE.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	// getViperWithDefault + SetFs
	v := viper.New()
	v.SetFs(FS)

	opts := []config.LoaderOption{
		config.WithViper(v),
		config.WithName(DefaultFilename),
		config.WithType(DefaultFileExtension),
		config.WithEnvPrefix(DefaultEnvPrefix),
		config.WithEnvKeyReplacer(".", "_"),
	}

	// load opt from filepath if exist
	if filePath != EmptyPath {
		if err := validateFilepath(FS, filePath); err != nil {
			return nil, err // if filepath not valid, returns err
		}
		opts = append(opts, config.WithFile(filePath))
	} else {
		currPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current work directory path: %w", err)
		}
		opts = append(opts, config.WithPath(currPath))
	}

	l := config.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptionalConfig returns nil config and nil error when no config file is found.
func LoadOptionalConfig(filePath string) (*ClientConfig, error) {
	c, err := LoadClientConfig(filePath)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func validateFilepath(fs afero.Fs, fpath string) error {
	f, err := fs.Stat(fpath)
	if err != nil {
		return err
	}
	if !f.Mode().IsRegular() {
		return fmt.Errorf("%s not a file", fpath)
	}
	return nil
}
