package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// set of supported api header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-Id"
)

// set of supported api media types
const (
	MediaTypeApplicationJSON = "application/json"
)

const (
	bearerPrefix = "Bearer "
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body   io.Reader
	Header http.Header
	Token  string
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   bytes.NewReader(body),
		Header: http.Header{HeaderContentType: []string{MediaTypeApplicationJSON}},
	}, nil
}

// BearerToken formats the token as a bearer credential
func BearerToken(token string) string {
	return bearerPrefix + token
}

// ParseBearerToken extracts the token from a bearer credential
func ParseBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}

// IsJSON reports whether the media type is JSON, ignoring any parameters
func IsJSON(contentType string) bool {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	return strings.EqualFold(mediaType, MediaTypeApplicationJSON)
}

// ErrUnexpectedStatusCode is an unexpected status code error
type ErrUnexpectedStatusCode struct {
	Action string
	Actual int
}

func (err ErrUnexpectedStatusCode) Error() string {
	return fmt.Sprintf("failed to %s, server responded with status %d", err.Action, err.Actual)
}

// StatusCode returns the unexpected status
func (err ErrUnexpectedStatusCode) StatusCode() int {
	return err.Actual
}
