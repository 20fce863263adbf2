package user

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/articledesk/articles-cli/internal/articles"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "articles"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagAPIBaseURL      = "api-url"
	FlagAPIBaseURLUsage = "specify the base CMS API URL"

	FlagMutationPolicy      = "mutation-policy"
	FlagMutationPolicyUsage = `Specify when edits and deletes change the local articles (Default value: "confirmed"; Allowed values: "confirmed", "write-through")`
)

var (
	errEmptyToken = errors.New("session token must not be blank")
)

// Profile is the CLI profile, it doubles as the persistent token store
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs
	v   *viper.Viper
}

// Flags are the CLI profile flags
type Flags struct {
	APIBaseURL     string
	TelemetryMode  telemetry.Mode
	MutationPolicy articles.MutationPolicy
}

// ProfileOption configures a Profile
type ProfileOption func(p *Profile)

// WithFs sets the filesystem the profile is read from and saved to
func WithFs(fs afero.Fs) ProfileOption {
	return func(p *Profile) { p.fs = fs }
}

// WithDir sets the directory the profile is read from and saved to
func WithDir(dir string) ProfileOption {
	return func(p *Profile) { p.dir = dir }
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string, opts ...ProfileOption) (*Profile, error) {
	p := &Profile{
		Name: name,
		fs:   afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.dir == "" {
		dir, dirErr := HomeDir()
		if dirErr != nil {
			return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
		}
		p.dir = dir
	}

	p.v = viper.New()
	p.v.SetFs(p.fs)
	p.v.SetConfigPermissions(0600)

	return p, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	p.v.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return p.v.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	p.v.SetConfigName(p.Name)
	p.v.AddConfigPath(p.dir)
	p.v.SetConfigType(ProfileType)

	p.v.SetEnvPrefix(envPrefix)
	p.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	p.v.AutomaticEnv()

	if err := p.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := p.v.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.SetString(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.APIBaseURL == "" {
		apiBaseURL := p.APIBaseURL()
		if apiBaseURL == "" {
			apiBaseURL = strapi.DefaultBaseURL
		}
		p.Flags.APIBaseURL = apiBaseURL
	}
	p.SetAPIBaseURL(p.Flags.APIBaseURL)

	if p.Flags.MutationPolicy == "" {
		policy, err := p.MutationPolicy()
		if err != nil {
			return err
		}
		p.Flags.MutationPolicy = policy
	}
	p.SetString(keyMutationPolicy, p.Flags.MutationPolicy.String())

	return p.Save()
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Fs returns the CLI profile filesystem
func (p Profile) Fs() afero.Fs {
	return p.fs
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+ProfileType)
}

// set of supported CLI profile keys
const (
	keyToken      = "token"
	keyIdentifier = "identifier"

	keyAPIBaseURL     = "api_base_url"
	keyTelemetryMode  = "telemetry_mode"
	keyMutationPolicy = "mutation_policy"
)

// SaveToken saves the session token and persists the profile
func (p *Profile) SaveToken(token string) error {
	if token == "" {
		return errEmptyToken
	}
	p.SetString(keyToken, token)
	return p.Save()
}

// LoadToken returns the saved session token, if any
func (p *Profile) LoadToken() (string, bool) {
	token := p.GetString(keyToken)
	return token, token != ""
}

// ClearToken removes the session token and persists the profile
func (p *Profile) ClearToken() error {
	p.Clear(keyToken)
	return p.Save()
}

// Identifier gets the identifier the user last logged in with
func (p Profile) Identifier() string {
	return p.GetString(keyIdentifier)
}

// SetIdentifier sets the identifier the user last logged in with
func (p Profile) SetIdentifier(identifier string) {
	p.SetString(keyIdentifier, identifier)
}

// APIBaseURL gets the CLI profile CMS API base url
func (p Profile) APIBaseURL() string {
	return p.GetString(keyAPIBaseURL)
}

// SetAPIBaseURL sets the CLI profile CMS API base url
func (p Profile) SetAPIBaseURL(apiBaseURL string) {
	p.SetString(keyAPIBaseURL, apiBaseURL)
}

// TelemetryMode gets the CLI profile telemetry mode
func (p Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// MutationPolicy gets the CLI profile mutation policy
func (p Profile) MutationPolicy() (articles.MutationPolicy, error) {
	return articles.ParseMutationPolicy(p.GetString(keyMutationPolicy))
}
