package connection_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/odpf/tabctl/client/cmd/internal/connection"
	"github.com/odpf/tabctl/client/cmd/internal/progressbar"
	"github.com/odpf/tabctl/config"
	"github.com/odpf/tabctl/core/analytics"
	"github.com/odpf/tabctl/mock"
)

const configPath = "/etc/tabctl/tabctl.yaml"

const clientConfig = `
version: 1
log:
  level: info
server: https://tableau.example.io
site: marketing
auth:
  username: analyst
  password: from-config
  token_name: ci-token
  token_value: secret-value
`

type FlagsTestSuite struct {
	suite.Suite
	a        afero.Afero
	originFS afero.Fs
}

func TestFlags(t *testing.T) {
	suite.Run(t, new(FlagsTestSuite))
}

func (s *FlagsTestSuite) SetupTest() {
	s.a = afero.Afero{Fs: afero.NewMemMapFs()}
	s.originFS = config.FS
	config.FS = s.a.Fs
	s.Require().NoError(s.a.WriteFile(configPath, []byte(clientConfig), fs.ModeTemporary))
}

func (s *FlagsTestSuite) TearDownTest() {
	config.FS = s.originFS
}

func (*FlagsTestSuite) newCommand(f *connection.Flags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f.InjectCommonFlags(cmd)
	f.InjectPasswordFlags(cmd)
	f.InjectTokenFlags(cmd)
	return cmd
}

func (s *FlagsTestSuite) TestLoad() {
	s.Run("should fill missing values from config", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-c", configPath, "-S", "finance"}))

		err := f.Load(cmd, connection.FlagServer)

		s.NoError(err)
		s.Equal("info", f.LogLevel)
		s.Equal(analytics.Credentials{
			Server:     "https://tableau.example.io",
			Site:       "finance",
			Username:   "analyst",
			Password:   "from-config",
			TokenName:  "ci-token",
			TokenValue: "secret-value",
		}, f.Credentials())
	})

	s.Run("should not take config token when password flags are given", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-c", configPath, "-u", "admin", "-w", "from-flag"}))

		s.NoError(f.Load(cmd))

		creds := f.Credentials()
		s.False(creds.UsesToken())
		s.Equal("admin", creds.Username)
		s.Equal("from-flag", creds.Password)
		s.Empty(creds.TokenName)
		s.Empty(creds.TokenValue)
	})

	s.Run("should keep token flags alongside a given password", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-c", configPath, "-w", "from-flag", "-p", "flag-token", "-v", "flag-value"}))

		s.NoError(f.Load(cmd))

		s.Equal("flag-token", f.TokenName)
		s.Equal("flag-value", f.TokenValue)
	})

	s.Run("should keep explicit logging level", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-c", configPath, "-l", "debug"}))

		s.NoError(f.Load(cmd))
		s.Equal("debug", f.LogLevel)
	})

	s.Run("should mark flags required when config is absent", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-s", "https://tableau.example.io"}))

		s.NoError(f.Load(cmd, connection.FlagServer, connection.FlagTokenName))

		annotations := cmd.Flags().Lookup(connection.FlagTokenName).Annotations
		s.Equal([]string{"true"}, annotations[cobra.BashCompOneRequiredFlag])
	})

	s.Run("should reject unknown logging level", func() {
		f := &connection.Flags{}
		cmd := s.newCommand(f)
		s.Require().NoError(cmd.Flags().Parse([]string{"-l", "verbose"}))

		s.Error(f.Load(cmd))
	})
}

func TestTokenCredentials(t *testing.T) {
	f := &connection.Flags{
		Server:     "https://tableau.example.io",
		Username:   "analyst",
		Password:   "secret",
		TokenName:  "ci-token",
		TokenValue: "secret-value",
	}

	creds := f.TokenCredentials()

	assert.Empty(t, creds.Username)
	assert.Empty(t, creds.Password)
	assert.Equal(t, "ci-token", creds.TokenName)
	assert.Equal(t, "secret-value", creds.TokenValue)
}

func TestSpinningService(t *testing.T) {
	ctx := context.Background()
	creds := analytics.Credentials{Server: "https://tableau.example.io", TokenName: "ci", TokenValue: "v"}
	bar := progressbar.NewProgressBarWithWriter(io.Discard)

	t.Run("should pass calls through to the wrapped session", func(t *testing.T) {
		session := new(mock.AnalyticsSession)
		defer session.AssertExpectations(t)
		service := new(mock.AnalyticsService)
		defer service.AssertExpectations(t)

		datasources := []analytics.Datasource{{ID: "ds-1", Name: "sales"}}
		service.On("SignIn", ctx, creds).Return(session, nil)
		session.On("Datasources", ctx).Return(datasources, nil)
		session.On("SignOut", ctx).Return(nil)

		s, err := connection.NewSpinningService(service, bar).SignIn(ctx, creds)
		assert.NoError(t, err)

		actual, err := s.Datasources(ctx)
		assert.NoError(t, err)
		assert.Equal(t, datasources, actual)
		assert.NoError(t, s.SignOut(ctx))
	})

	t.Run("should return sign in error", func(t *testing.T) {
		service := new(mock.AnalyticsService)
		defer service.AssertExpectations(t)
		service.On("SignIn", ctx, creds).Return(nil, errors.New("401001: Signin Error"))

		s, err := connection.NewSpinningService(service, bar).SignIn(ctx, creds)

		assert.Nil(t, s)
		assert.EqualError(t, err, "401001: Signin Error")
	})
}
