package tableau

import (
	"context"
	"errors"
	"net/http"

	"github.com/odpf/tabctl/core/analytics"
)

type siteRef struct {
	ID         string `json:"id,omitempty"`
	ContentURL string `json:"contentUrl"`
}

type signInCredentials struct {
	Name                      string  `json:"name,omitempty"`
	Password                  string  `json:"password,omitempty"`
	PersonalAccessTokenName   string  `json:"personalAccessTokenName,omitempty"`
	PersonalAccessTokenSecret string  `json:"personalAccessTokenSecret,omitempty"`
	Site                      siteRef `json:"site"`
}

type signInRequest struct {
	Credentials signInCredentials `json:"credentials"`
}

type signInResponse struct {
	Credentials struct {
		Token string  `json:"token"`
		Site  siteRef `json:"site"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"credentials"`
}

type serverInfoResponse struct {
	ServerInfo struct {
		ProductVersion struct {
			Value string `json:"value"`
			Build string `json:"build"`
		} `json:"productVersion"`
		RestAPIVersion string `json:"restApiVersion"`
	} `json:"serverInfo"`
}

// SignIn authenticates with a personal access token when one is given, with username and password otherwise.
func (c *Client) SignIn(ctx context.Context, creds analytics.Credentials) (analytics.Session, error) {
	if creds.Server == "" {
		return nil, errors.New("server address is empty")
	}
	version := c.apiVersion
	if version == "" {
		version = c.serverVersion(ctx, creds.Server)
	}

	body := signInRequest{Credentials: signInCredentials{Site: siteRef{ContentURL: creds.Site}}}
	if creds.UsesToken() {
		body.Credentials.PersonalAccessTokenName = creds.TokenName
		body.Credentials.PersonalAccessTokenSecret = creds.TokenValue
	} else {
		body.Credentials.Name = creds.Username
		body.Credentials.Password = creds.Password
	}

	var resp signInResponse
	err := c.invoke(ctx, request{
		method: http.MethodPost,
		url:    endpoint(creds.Server, version, "auth", "signin"),
		body:   body,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Credentials.Token == "" {
		return nil, errors.New("sign in response carries no token")
	}
	c.logger.Debug("signed in", "site", resp.Credentials.Site.ID, "user", resp.Credentials.User.ID)

	return &session{
		client:  c,
		server:  creds.Server,
		version: version,
		token:   resp.Credentials.Token,
		siteID:  resp.Credentials.Site.ID,
		userID:  resp.Credentials.User.ID,
	}, nil
}

// ServerInfo describes the product and REST API versions a server runs.
type ServerInfo struct {
	ProductVersion string
	Build          string
	APIVersion     string
}

// ServerInfo is served without authentication.
func (c *Client) ServerInfo(ctx context.Context, server string) (ServerInfo, error) {
	if server == "" {
		return ServerInfo{}, errors.New("server address is empty")
	}
	var resp serverInfoResponse
	err := c.invoke(ctx, request{
		method: http.MethodGet,
		url:    endpoint(server, discoveryAPIVersion, "serverinfo"),
	}, &resp)
	if err != nil {
		return ServerInfo{}, err
	}
	return ServerInfo{
		ProductVersion: resp.ServerInfo.ProductVersion.Value,
		Build:          resp.ServerInfo.ProductVersion.Build,
		APIVersion:     resp.ServerInfo.RestAPIVersion,
	}, nil
}

// serverVersion asks the server for its newest REST API version, falling back to DefaultAPIVersion.
func (c *Client) serverVersion(ctx context.Context, server string) string {
	info, err := c.ServerInfo(ctx, server)
	if err != nil || info.APIVersion == "" {
		c.logger.Warn("could not detect server api version, using default", "version", DefaultAPIVersion)
		return DefaultAPIVersion
	}
	c.logger.Debug("detected server version", "product", info.ProductVersion, "api", info.APIVersion)
	return info.APIVersion
}

type session struct {
	client *Client

	server  string
	version string
	token   string
	siteID  string
	userID  string
}

func (s *session) SignOut(ctx context.Context) error {
	return s.client.invoke(ctx, request{
		method: http.MethodPost,
		url:    endpoint(s.server, s.version, "auth", "signout"),
		token:  s.token,
	}, nil)
}

func (s *session) siteEndpoint(segments ...string) string {
	return endpoint(s.server, s.version, append([]string{"sites", s.siteID}, segments...)...)
}
