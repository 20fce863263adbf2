package strapi

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/articledesk/articles-cli/internal/utils/test/assert"
)

func TestServerError(t *testing.T) {
	var jsonContentTypeHeader http.Header = map[string][]string{"Content-Type": {"application/json; charset=utf-8"}}

	t.Run("should create a transport error from a non-json response", func(t *testing.T) {
		err := parseResponseError(&http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Header:     map[string][]string{"Content-Type": {"text/html"}},
			Body:       ioutil.NopCloser(strings.NewReader("<html>bad gateway</html>")),
		})
		assert.True(t, IsTransport(err), "expected a transport error")
		assert.False(t, IsServerError(err), "expected no server error")
		assert.True(t, errors.Is(err, ErrUnexpectedContentType), "expected an unexpected content type error")
	})

	t.Run("should keep the status of a non-json response that is never read", func(t *testing.T) {
		err := parseStatusError(&http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Body:       ioutil.NopCloser(strings.NewReader("<html>bad gateway</html>")),
		})
		assert.Equal(t, ServerError{Status: http.StatusBadGateway, Message: "502 Bad Gateway"}, err)
	})

	t.Run("should create an error from an empty json response with its status", func(t *testing.T) {
		err := parseResponseError(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Status:     "500 Internal Server Error",
			Body:       ioutil.NopCloser(strings.NewReader("")),
			Header:     jsonContentTypeHeader,
		})
		assert.Equal(t, "500 Internal Server Error", err.Error())
	})

	t.Run("should unmarshal the error envelope successfully", func(t *testing.T) {
		err := parseResponseError(&http.Response{
			StatusCode: http.StatusBadRequest,
			Body: ioutil.NopCloser(strings.NewReader(
				`{"data":null,"error":{"status":400,"name":"ValidationError","message":"Invalid identifier or password","details":{}}}`,
			)),
			Header: jsonContentTypeHeader,
		})
		assert.Equal(t, ServerError{
			Status:  http.StatusBadRequest,
			Name:    "ValidationError",
			Message: "Invalid identifier or password",
			Details: map[string]interface{}{},
		}, err)
	})

	t.Run("should fill in the status of an envelope without one", func(t *testing.T) {
		err := parseResponseError(&http.Response{
			StatusCode: http.StatusForbidden,
			Status:     "403 Forbidden",
			Body:       ioutil.NopCloser(strings.NewReader(`{"error":{"name":"ForbiddenError"}}`)),
			Header:     jsonContentTypeHeader,
		})
		assert.Equal(t, ServerError{Status: http.StatusForbidden, Name: "ForbiddenError", Message: "403 Forbidden"}, err)
	})

	t.Run("should use the raw payload when the json is not an error envelope", func(t *testing.T) {
		err := parseResponseError(&http.Response{
			StatusCode: http.StatusNotFound,
			Body:       ioutil.NopCloser(strings.NewReader(`{"message":"not here"}`)),
			Header:     jsonContentTypeHeader,
		})
		assert.Equal(t, ServerError{Status: http.StatusNotFound, Message: `{"message":"not here"}`}, err)
	})
}

func TestErrorCategories(t *testing.T) {
	transportErr := &TransportError{Method: http.MethodGet, Path: "/articles", Err: errors.New("connection refused")}
	serverErr := ServerError{Status: http.StatusBadRequest, Message: "Invalid identifier or password"}

	for _, tc := range []struct {
		description string
		err         error
		transport   bool
		server      bool
	}{
		{description: "a transport error", err: transportErr, transport: true},
		{description: "a wrapped transport error", err: fmt.Errorf("failed to load: %w", transportErr), transport: true},
		{description: "a server error", err: serverErr, server: true},
		{description: "a wrapped server error", err: fmt.Errorf("failed to login: %w", serverErr), server: true},
		{description: "some other error", err: errors.New("something else")},
	} {
		t.Run(fmt.Sprintf("should categorize %s", tc.description), func(t *testing.T) {
			assert.Equal(t, tc.transport, IsTransport(tc.err))
			assert.Equal(t, tc.server, IsServerError(tc.err))
		})
	}

	t.Run("should print the transport error with its request details", func(t *testing.T) {
		assert.Equal(t, "failed to GET /articles: connection refused", transportErr.Error())
		assert.Equal(t, "connection refused", errors.Unwrap(transportErr).Error())
	})
}
