package mock

import (
	"testing"

	"github.com/articledesk/articles-cli/internal/cli/user"
	u "github.com/articledesk/articles-cli/internal/utils/test"
	"github.com/articledesk/articles-cli/internal/utils/test/assert"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
// backed by an in-memory filesystem
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfile(
		primitive.NewObjectID().Hex(),
		user.WithFs(afero.NewMemMapFs()),
		user.WithDir("/.config/articles-cli"),
	)
	assert.Nil(t, err)
	return profile
}

// NewProfileOnDisk returns a new CLI profile with a random name
// saved under a temporary home directory
func NewProfileOnDisk(t *testing.T) *user.Profile {
	t.Helper()

	u.TempHomeDir(t)

	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewProfileWithToken returns a new CLI profile holding a session token
func NewProfileWithToken(t *testing.T, apiBaseURL, token string) *user.Profile {
	t.Helper()
	profile := NewProfile(t)
	profile.SetAPIBaseURL(apiBaseURL)
	assert.Nil(t, profile.SaveToken(token))
	return profile
}
