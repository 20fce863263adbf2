package strapi

import (
	"context"
	"net/http"

	"github.com/articledesk/articles-cli/internal/utils/api"
)

const (
	registerPath = "/auth/local/register"
	loginPath    = "/auth/local"
)

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse is the result of a successful registration or login
type AuthResponse struct {
	JWT  string  `json:"jwt"`
	User Profile `json:"user"`
}

type authResult struct {
	AuthResponse
	Error *ServerError `json:"error"`
}

func (c *client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	return c.authenticate(ctx, registerPath, registerPayload{username, email, password})
}

func (c *client) Login(ctx context.Context, identifier, password string) (AuthResponse, error) {
	return c.authenticate(ctx, loginPath, loginPayload{identifier, password})
}

// authenticate treats any response carrying a session token as a success,
// and anything else as an authentication failure
func (c *client) authenticate(ctx context.Context, path string, payload interface{}) (AuthResponse, error) {
	res, err := c.doJSON(ctx, http.MethodPost, path, payload, api.RequestOptions{})
	if err != nil {
		return AuthResponse{}, err
	}

	if !api.IsJSON(res.Header.Get(api.HeaderContentType)) {
		return AuthResponse{}, parseResponseError(res)
	}

	var result authResult
	if err := decode(res, &result); err != nil {
		return AuthResponse{}, err
	}

	if result.JWT != "" {
		return result.AuthResponse, nil
	}

	if result.Error != nil {
		serverErr := *result.Error
		if serverErr.Status == 0 {
			serverErr.Status = res.StatusCode
		}
		if serverErr.Message == "" {
			serverErr.Message = res.Status
		}
		return AuthResponse{}, serverErr
	}

	return AuthResponse{}, ServerError{Status: res.StatusCode, Message: "response is missing a session token"}
}
