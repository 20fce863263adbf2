// Package session owns the login, registration and logout transitions
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/articledesk/articles-cli/internal/articles"
	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// set of notification titles
const (
	TitleRegistered        = "Registration successful"
	TitleRegisterFailed    = "Registration failed"
	TitleLoggedIn          = "Login successful"
	TitleLoginFailed       = "Login failed"
	TitleProfileLoadFailed = "Loading profile failed"
)

// State is the session state
type State int

// set of session states
const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Credentials are the user's registration or login inputs
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Identifier returns the login identifier, preferring the email
func (c Credentials) Identifier() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Username
}

// Manager is the session state machine
type Manager struct {
	client   strapi.Client
	tokens   auth.TokenStore
	articles *articles.Manager
	notifier notify.Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	profile *strapi.Profile
}

// NewManager creates a new session manager
func NewManager(client strapi.Client, tokens auth.TokenStore, articles *articles.Manager, notifier notify.Notifier, logger *zap.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		client:   client,
		tokens:   tokens,
		articles: articles,
		notifier: notifier,
		logger:   logger,
	}
}

// Start restores the session from the token store.
// A stored token makes the session authenticated even if
// fetching the profile or articles fails.
func (m *Manager) Start(ctx context.Context) State {
	token, ok := m.tokens.LoadToken()
	if !ok {
		m.setState(StateAnonymous, nil)
		return StateAnonymous
	}

	m.setState(StateAuthenticated, nil)
	if err := m.hydrate(ctx, token); err != nil {
		m.logger.Debug("session restored without all of its data", zap.Error(err))
	}
	return StateAuthenticated
}

// Register creates a new account and starts its session
func (m *Manager) Register(ctx context.Context, creds Credentials) error {
	res, err := m.client.Register(ctx, creds.Username, creds.Email, creds.Password)
	if err != nil {
		return m.fail(err, TitleRegisterFailed, "register")
	}
	return m.authenticate(ctx, res, TitleRegistered)
}

// Login starts a session for an existing account
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	res, err := m.client.Login(ctx, creds.Identifier(), creds.Password)
	if err != nil {
		return m.fail(err, TitleLoginFailed, "login")
	}
	return m.authenticate(ctx, res, TitleLoggedIn)
}

// Logout ends the session without contacting the server
func (m *Manager) Logout() error {
	err := m.tokens.ClearToken()

	m.articles.Reset()
	m.setState(StateAnonymous, nil)

	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// Refresh fetches the profile and articles again
func (m *Manager) Refresh(ctx context.Context) error {
	token, ok := m.tokens.LoadToken()
	if !ok {
		return articles.ErrNoSession
	}
	return m.hydrate(ctx, token)
}

// State returns the session state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsLoggedIn reports whether the session is authenticated
func (m *Manager) IsLoggedIn() bool {
	return m.State() == StateAuthenticated
}

// Profile returns the authenticated user's profile, if it has been fetched
func (m *Manager) Profile() (strapi.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile == nil {
		return strapi.Profile{}, false
	}
	return *m.profile, true
}

// Articles returns the article manager bound to this session
func (m *Manager) Articles() *articles.Manager {
	return m.articles
}

func (m *Manager) authenticate(ctx context.Context, res strapi.AuthResponse, title string) error {
	if err := m.tokens.SaveToken(res.JWT); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}

	var profile *strapi.Profile
	if res.User.ID != 0 {
		user := res.User
		profile = &user
	}
	m.setState(StateAuthenticated, profile)

	m.notifier.Notify(notify.Success(title))

	if err := m.hydrate(ctx, res.JWT); err != nil {
		m.logger.Debug("session started without all of its data", zap.Error(err))
	}
	return nil
}

// hydrate fetches the profile and articles concurrently,
// neither fetch cancels the other
func (m *Manager) hydrate(ctx context.Context, token string) error {
	var g errgroup.Group

	g.Go(func() error {
		profile, err := m.client.CurrentUser(ctx, token)
		if err != nil {
			return m.fail(err, TitleProfileLoadFailed, "get current user")
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.state == StateAuthenticated {
			m.profile = &profile
		}
		return nil
	})

	g.Go(func() error {
		return m.articles.Load(ctx)
	})

	return g.Wait()
}

func (m *Manager) setState(state State, profile *strapi.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.profile = profile
}

// fail presents the error on the channel its category belongs to:
// server errors are notified, anything else goes to the diagnostic logger
func (m *Manager) fail(err error, title, op string) error {
	var serverErr strapi.ServerError
	if errors.As(err, &serverErr) {
		m.notifier.Notify(notify.Failure(title, serverErr.Message))
		return notify.Reported(err)
	}

	m.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	return notify.Reported(err)
}
