package strapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/articledesk/articles-cli/internal/utils/api"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the base URL of the hosted CMS API
const DefaultBaseURL = "https://hopeful-desire-21262e95c7.strapiapp.com/api"

// Client is a Strapi CMS client
type Client interface {
	Register(ctx context.Context, username, email, password string) (AuthResponse, error)
	Login(ctx context.Context, identifier, password string) (AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (Profile, error)

	Articles(ctx context.Context, token string) ([]Article, error)
	CreateArticle(ctx context.Context, token, title, description string) (Article, error)
	UpdateArticle(ctx context.Context, token string, id int64, title, description string) error
	DeleteArticle(ctx context.Context, token string, id int64) error

	Status(ctx context.Context) error
}

// Option configures a Client
type Option func(c *client)

// WithHTTPClient sets the *http.Client used to send requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) { c.httpClient = httpClient }
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *client) { c.logger = logger }
}

// NewClient creates a new Strapi client
func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func (c *client) doJSON(ctx context.Context, method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	jsonOptions, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	jsonOptions.Token = options.Token
	return c.do(ctx, method, path, jsonOptions)
}

func (c *client) do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	for key, values := range options.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if options.Token != "" {
		req.Header.Set(api.HeaderAuthorization, api.BearerToken(options.Token))
	}

	requestID := uuid.New().String()
	req.Header.Set(api.HeaderRequestID, requestID)

	logger := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", zap.Error(err))
		return nil, &TransportError{Method: method, Path: path, RequestID: requestID, Err: err}
	}

	logger.Debug("request completed",
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// decode reads a JSON response body into out, closing the body
func decode(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return newTransportError(res, err)
	}
	return nil
}

// discard drains and closes a response body nobody consumes
func discard(res *http.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
}

func isSuccess(res *http.Response) bool {
	return res.StatusCode >= 200 && res.StatusCode <= 299
}

func (c *client) Status(ctx context.Context) error {
	res, err := c.do(ctx, http.MethodGet, "", api.RequestOptions{})
	if err != nil {
		return err
	}
	defer discard(res)

	if res.StatusCode >= http.StatusInternalServerError {
		return api.ErrUnexpectedStatusCode{Action: "get server status", Actual: res.StatusCode}
	}
	return nil
}
