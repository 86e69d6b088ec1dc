package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the error body returned by the portal service.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("portal api error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("portal api error (%d %s)", e.StatusCode, e.Code)
}

// parseErrorResponse turns a non-2xx response body into an *APIError. Bodies
// that are not the standard error shape still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Message = string(body)
	}
	return apiErr
}
