package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// ErrorEnvelope is the backend's standardized JSON error response.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// decodeError turns a non-2xx response into an HTTPError, using the error
// envelope when the body carries one.
func decodeError(resp *http.Response) error {
	herr := &serrors.HTTPError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var envelope ErrorEnvelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			herr.Code = envelope.Code
			herr.Message = envelope.Message
		}
	}
	return herr
}
