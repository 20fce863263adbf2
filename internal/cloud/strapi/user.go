package strapi

import (
	"context"
	"net/http"
	"time"

	"github.com/articledesk/articles-cli/internal/utils/api"
)

const (
	currentUserPath = "/users/me"
)

// Profile is the authenticated user's profile
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider,omitempty"`
	Confirmed bool      `json:"confirmed"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (c *client) CurrentUser(ctx context.Context, token string) (Profile, error) {
	res, err := c.do(ctx, http.MethodGet, currentUserPath, api.RequestOptions{Token: token})
	if err != nil {
		return Profile{}, err
	}
	if !isSuccess(res) {
		return Profile{}, parseResponseError(res)
	}

	var profile Profile
	if err := decode(res, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
