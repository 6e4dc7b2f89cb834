package analytics

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/odpf/tabctl/internal/errors"
)

// MissingFieldsMessage is shown when a required input is left empty.
const MissingFieldsMessage = "Please fill in all the required fields."

// Credentials are held for a single session only.
// Site is the site content url, empty selects the default site.
type Credentials struct {
	Server string
	Site   string

	Username string
	Password string

	TokenName  string
	TokenValue string
}

func (c Credentials) UsesToken() bool {
	return c.TokenName != "" || c.TokenValue != ""
}

func (c Credentials) Validate() error {
	if c.UsesToken() {
		return c.ValidateToken()
	}
	return c.ValidatePassword()
}

func (c Credentials) ValidatePassword() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
	if err != nil {
		return errors.InvalidArgument(EntityCredentials, err.Error())
	}
	return nil
}

func (c Credentials) ValidateToken() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.TokenName, validation.Required),
		validation.Field(&c.TokenValue, validation.Required),
	)
	if err != nil {
		return errors.InvalidArgument(EntityCredentials, err.Error())
	}
	return nil
}
