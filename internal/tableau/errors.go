package tableau

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// APIError is the error payload returned by the server.
type APIError struct {
	StatusCode int
	Code       string
	Summary    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status response: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Summary)
	}
	return fmt.Sprintf("%s: %s - %s", e.Code, e.Summary, e.Detail)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Summary string `json:"summary"`
		Detail  string `json:"detail"`
	} `json:"error"`
}

func parseError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	payload, err := io.ReadAll(resp.Body)
	if err != nil || len(payload) == 0 {
		return apiErr
	}
	var body errorResponse
	if err := json.Unmarshal(payload, &body); err != nil {
		return apiErr
	}
	apiErr.Code = body.Error.Code
	apiErr.Summary = body.Error.Summary
	apiErr.Detail = body.Error.Detail
	return apiErr
}
