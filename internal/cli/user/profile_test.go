package user

import (
	"testing"

	"github.com/articledesk/articles-cli/internal/articles"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/telemetry"
	"github.com/articledesk/articles-cli/internal/utils/test/assert"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v2"
)

func newTestProfile(t *testing.T, fs afero.Fs) *Profile {
	t.Helper()
	profile, err := NewProfile(primitive.NewObjectID().Hex(), WithFs(fs), WithDir("/home/.config/articles-cli"))
	assert.Nil(t, err)
	return profile
}

func TestProfileResolveFlags(t *testing.T) {
	t.Run("should provide defaults if flags are empty and set them in the profile", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())

		assert.Equal(t, telemetry.ModeEmpty, profile.Flags.TelemetryMode)
		assert.Equal(t, "", profile.Flags.APIBaseURL)
		assert.Equal(t, articles.MutationPolicy(""), profile.Flags.MutationPolicy)

		assert.Nil(t, profile.ResolveFlags())

		assert.Equal(t, telemetry.ModeEmpty, profile.Flags.TelemetryMode)
		assert.Equal(t, telemetry.ModeEmpty, profile.TelemetryMode())

		assert.Equal(t, strapi.DefaultBaseURL, profile.Flags.APIBaseURL)
		assert.Equal(t, strapi.DefaultBaseURL, profile.APIBaseURL())

		assert.Equal(t, articles.PolicyConfirmed, profile.Flags.MutationPolicy)
		policy, err := profile.MutationPolicy()
		assert.Nil(t, err)
		assert.Equal(t, articles.PolicyConfirmed, policy)
	})

	t.Run("should use flags to set them in the profile", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())

		profile.Flags = Flags{
			TelemetryMode:  telemetry.ModeStdout,
			APIBaseURL:     "http://localhost:1337/api",
			MutationPolicy: articles.PolicyWriteThrough,
		}

		assert.Nil(t, profile.ResolveFlags())

		assert.Equal(t, telemetry.ModeStdout, profile.TelemetryMode())
		assert.Equal(t, "http://localhost:1337/api", profile.APIBaseURL())

		policy, err := profile.MutationPolicy()
		assert.Nil(t, err)
		assert.Equal(t, articles.PolicyWriteThrough, policy)
	})

	t.Run("should fail with an unsupported mutation policy saved in the profile", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())
		profile.SetString(keyMutationPolicy, "eventually")

		err := profile.ResolveFlags()
		assert.Equal(t, "unsupported mutation policy 'eventually', use one of: confirmed, write-through", err.Error())
	})
}

func TestProfileTokenStore(t *testing.T) {
	t.Run("should not have a token to start", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())

		token, ok := profile.LoadToken()
		assert.False(t, ok, "expected no token")
		assert.Equal(t, "", token)
	})

	t.Run("should reject a blank token", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())

		assert.Equal(t, errEmptyToken, profile.SaveToken(""))
	})

	t.Run("should persist the token to the profile file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		profile := newTestProfile(t, fs)

		assert.Nil(t, profile.SaveToken("T1"))

		data, err := afero.ReadFile(fs, profile.Path())
		assert.Nil(t, err)

		var out map[string]map[string]string
		assert.Nil(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, "T1", out[profile.Name][keyToken])

		t.Run("and a new profile reading the same file should load it", func(t *testing.T) {
			reloaded, err := NewProfile(profile.Name, WithFs(fs), WithDir(profile.Dir()))
			assert.Nil(t, err)
			assert.Nil(t, reloaded.Load())

			token, ok := reloaded.LoadToken()
			assert.True(t, ok, "expected a token")
			assert.Equal(t, "T1", token)
		})
	})

	t.Run("should overwrite a prior token", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())

		assert.Nil(t, profile.SaveToken("T1"))
		assert.Nil(t, profile.SaveToken("T2"))

		token, ok := profile.LoadToken()
		assert.True(t, ok, "expected a token")
		assert.Equal(t, "T2", token)
	})

	t.Run("should clear the token and keep the other keys", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		profile := newTestProfile(t, fs)
		profile.SetIdentifier("alice@example.com")

		assert.Nil(t, profile.SaveToken("T1"))
		assert.Nil(t, profile.ClearToken())

		_, ok := profile.LoadToken()
		assert.False(t, ok, "expected the token to be cleared")

		reloaded, err := NewProfile(profile.Name, WithFs(fs), WithDir(profile.Dir()))
		assert.Nil(t, err)
		assert.Nil(t, reloaded.Load())

		_, ok = reloaded.LoadToken()
		assert.False(t, ok, "expected the saved token to be cleared")
		assert.Equal(t, "alice@example.com", reloaded.Identifier())
	})
}

func TestProfileLoad(t *testing.T) {
	t.Run("should succeed when the profile file does not exist", func(t *testing.T) {
		profile := newTestProfile(t, afero.NewMemMapFs())
		assert.Nil(t, profile.Load())
	})

	t.Run("should fail when the profile file is not valid yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		profile := newTestProfile(t, fs)
		assert.Nil(t, afero.WriteFile(fs, profile.Path(), []byte("{{{"), 0600))

		err := profile.Load()
		assert.NotNil(t, err)
	})
}
