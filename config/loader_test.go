package config_test

import (
	"io/fs"
	"os"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/odpf/tabctl/config"
)

const clientConfig = `
version: 1
log:
  level: debug
server: https://prod-apnortheast-a.online.tableau.com/
site: marketing
api_version: "3.19"
requests_per_second: 4
auth:
  token_name: ci-token
  token_value: secret-value
`

type LoaderTestSuite struct {
	suite.Suite
	a        afero.Afero
	currPath string
	originFS afero.Fs
}

func TestLoader(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.a = afero.Afero{}
	s.a.Fs = afero.NewMemMapFs()
	s.originFS = config.FS
	config.FS = s.a.Fs

	p, err := os.Getwd()
	s.Require().NoError(err)
	s.currPath = p
	s.a.Fs.MkdirAll(s.currPath, fs.ModeTemporary)
}

func (s *LoaderTestSuite) TearDownTest() {
	config.FS = s.originFS
}

func (s *LoaderTestSuite) TestLoadClientConfig() {
	s.Run("WhenFilepathIsExist", func() {
		samplePath := "./sample/path/tabctl.yaml"
		s.a.WriteFile(samplePath, []byte(clientConfig), fs.ModeTemporary)
		defer s.a.Fs.RemoveAll(samplePath)

		c, err := config.LoadClientConfig(samplePath)

		s.Require().NoError(err)
		s.Equal(config.Version(1), c.Version)
		s.Equal(config.LogLevelDebug, c.Log.Level)
		s.Equal("https://prod-apnortheast-a.online.tableau.com/", c.Server)
		s.Equal("marketing", c.Site)
		s.Equal("3.19", c.APIVersion)
		s.Equal(4.0, c.RequestsPerSecond)
		s.Equal(config.Auth{TokenName: "ci-token", TokenValue: "secret-value"}, c.Auth)
	})

	s.Run("WhenFilepathIsEmpty", func() {
		s.a.WriteFile(path.Join(s.currPath, config.DefaultFilename+"."+config.DefaultFileExtension), []byte(clientConfig), fs.ModeTemporary)
		defer s.a.Fs.Remove(path.Join(s.currPath, config.DefaultFilename+"."+config.DefaultFileExtension))

		c, err := config.LoadClientConfig(config.EmptyPath)

		s.Require().NoError(err)
		s.Equal("marketing", c.Site)
	})

	s.Run("WhenFilepathIsNotExist", func() {
		c, err := config.LoadClientConfig("/path/not/exist")

		s.Error(err)
		s.Nil(c)
	})

	s.Run("WhenConfigIsInvalid", func() {
		samplePath := "./invalid/tabctl.yaml"
		s.a.WriteFile(samplePath, []byte("server: ftp://example.io\nlog:\n  level: verbose\n"), fs.ModeTemporary)
		defer s.a.Fs.RemoveAll(samplePath)

		c, err := config.LoadClientConfig(samplePath)

		s.Error(err)
		s.Nil(c)
	})
}

func (s *LoaderTestSuite) TestLoadOptionalConfig() {
	s.Run("WhenNoConfigInCurrentDirectory", func() {
		c, err := config.LoadOptionalConfig(config.EmptyPath)

		s.NoError(err)
		s.Nil(c)
	})

	s.Run("WhenExplicitFileIsMissing", func() {
		c, err := config.LoadOptionalConfig("./missing.yaml")

		s.Error(err)
		s.Nil(c)
	})
}
