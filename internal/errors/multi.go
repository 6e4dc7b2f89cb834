package errors

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// MultiError collects failures of independent actions that were all attempted.
type MultiError struct {
	msg    string
	errors *multierror.Error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{
		msg: msg,
	}
}

func (m *MultiError) Append(err error) {
	if err != nil {
		m.errors = multierror.Append(m.errors, err)
	}
}

func (m *MultiError) Len() int {
	if m.errors == nil {
		return 0
	}
	return m.errors.Len()
}

func (m *MultiError) Error() string {
	if m.errors == nil {
		return m.msg
	}
	return m.msg + ": " + m.errors.Error()
}

func (m *MultiError) Unwrap() error {
	return m.errors.ErrorOrNil()
}

func IsEmptyError(err error) bool {
	var me *MultiError
	if errors.As(err, &me) {
		return me.Len() == 0
	}
	return false
}

// MultiToError returns nil for a nil or empty MultiError.
func MultiToError(e error) error {
	if e == nil || IsEmptyError(e) {
		return nil
	}
	return e
}
