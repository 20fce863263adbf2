package strapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/articledesk/articles-cli/internal/utils/api"
)

// ServerError is a business error reported by the CMS
type ServerError struct {
	Status  int                    `json:"status"`
	Name    string                 `json:"name"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (se ServerError) Error() string {
	return se.Message
}

// StatusCode returns the HTTP status the error was reported with
func (se ServerError) StatusCode() int {
	return se.Status
}

type errorEnvelope struct {
	Error *ServerError `json:"error"`
}

// TransportError is a failure to send a request or read its response
type TransportError struct {
	Method    string
	Path      string
	RequestID string
	Err       error
}

func (te *TransportError) Error() string {
	return fmt.Sprintf("failed to %s %s: %s", te.Method, te.Path, te.Err)
}

// Unwrap returns the underlying cause
func (te *TransportError) Unwrap() error { return te.Err }

// IsTransport reports whether the error is a transport failure
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsServerError reports whether the error is a business error reported by the CMS
func IsServerError(err error) bool {
	var se ServerError
	return errors.As(err, &se)
}

// ErrUnexpectedContentType is returned when a response body the client
// must read is not JSON
var ErrUnexpectedContentType = errors.New("unexpected response content type")

// parseResponseError reads the error envelope from an unsuccessful *http.Response,
// a body that is not JSON cannot be parsed and is a transport failure
func parseResponseError(res *http.Response) error {
	defer res.Body.Close()

	contentType := res.Header.Get(api.HeaderContentType)
	if !api.IsJSON(contentType) {
		return newTransportError(res, fmt.Errorf("%w %q (%s)", ErrUnexpectedContentType, contentType, res.Status))
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return newTransportError(res, err)
	}

	payload := buf.String()
	if payload == "" {
		return ServerError{Status: res.StatusCode, Message: res.Status}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil || envelope.Error == nil {
		return ServerError{Status: res.StatusCode, Message: payload}
	}

	serverErr := *envelope.Error
	if serverErr.Status == 0 {
		serverErr.Status = res.StatusCode
	}
	if serverErr.Message == "" {
		serverErr.Message = res.Status
	}
	return serverErr
}

// parseStatusError is parseResponseError for requests whose response body
// is never read, where only the status of a non-JSON reply matters
func parseStatusError(res *http.Response) error {
	if api.IsJSON(res.Header.Get(api.HeaderContentType)) {
		return parseResponseError(res)
	}
	discard(res)
	return ServerError{Status: res.StatusCode, Message: res.Status}
}

func newTransportError(res *http.Response, err error) *TransportError {
	te := TransportError{Err: err}
	if req := res.Request; req != nil {
		te.Method = req.Method
		te.Path = req.URL.Path
		te.RequestID = req.Header.Get(api.HeaderRequestID)
	}
	return &te
}
