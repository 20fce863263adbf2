// Package articles keeps the local article collection consistent with server mutations
package articles

import (
	"context"
	"errors"
	"sync"

	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/notify"

	"go.uber.org/zap"
)

// set of notification titles
const (
	TitleCreated      = "Article created"
	TitleCreateFailed = "Article creation failed"
	TitleUpdated      = "Article updated"
	TitleUpdateFailed = "Article update failed"
	TitleDeleted      = "Article deleted"
	TitleDeleteFailed = "Article deletion failed"
	TitleLoadFailed   = "Loading articles failed"
)

var (
	// ErrNoSession is returned when there is no stored token to authorize requests with
	ErrNoSession = errors.New("no active session, please login and try again")

	// ErrSuperseded is returned when a newer operation on the same article replaced this one
	ErrSuperseded = errors.New("operation was superseded by a newer one on the same article")

	// ErrReset is returned when the local state was reset while the operation was in flight
	ErrReset = errors.New("operation was cancelled by a session reset")
)

// Option configures a Manager
type Option func(m *Manager)

// WithPolicy sets the mutation policy
func WithPolicy(policy MutationPolicy) Option {
	return func(m *Manager) { m.policy = policy }
}

// Manager owns the local article collection and applies
// the outcome of each remote operation to it
type Manager struct {
	client   strapi.Client
	tokens   auth.TokenStore
	notifier notify.Notifier
	logger   *zap.Logger
	policy   MutationPolicy

	collection Collection
	draft      Draft

	mu       sync.Mutex
	seq      uint64
	epoch    uint64
	inflight map[int64]task
	pending  map[uint64]context.CancelFunc
}

type task struct {
	seq    uint64
	cancel context.CancelFunc
}

// NewManager creates a new article manager
func NewManager(client strapi.Client, tokens auth.TokenStore, notifier notify.Notifier, logger *zap.Logger, opts ...Option) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		client:   client,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
		policy:   DefaultPolicy,
		inflight: map[int64]task{},
		pending:  map[uint64]context.CancelFunc{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Collection returns the local article collection
func (m *Manager) Collection() *Collection { return &m.collection }

// Draft returns the input buffer for the next created article
func (m *Manager) Draft() *Draft { return &m.draft }

// Policy returns the mutation policy
func (m *Manager) Policy() MutationPolicy { return m.policy }

// Load replaces the local collection with the server's articles
func (m *Manager) Load(ctx context.Context) error {
	token, ok := m.tokens.LoadToken()
	if !ok {
		return ErrNoSession
	}

	taskCtx, seq, epoch := m.track(ctx)
	articles, err := m.client.Articles(taskCtx, token)

	current := m.finish(seq, epoch, func() {
		if err == nil {
			m.collection.Replace(articles)
		}
	})
	if !current {
		m.logger.Debug("discarding result after reset", zap.String("op", "list articles"), zap.NamedError("result", err))
		return notify.Reported(ErrReset)
	}

	if err != nil {
		return m.fail(err, TitleLoadFailed, zap.String("op", "list articles"))
	}
	return nil
}

// Create creates an article and appends it to the local collection
func (m *Manager) Create(ctx context.Context, title, description string) (strapi.Article, error) {
	token, ok := m.tokens.LoadToken()
	if !ok {
		return strapi.Article{}, ErrNoSession
	}

	taskCtx, seq, epoch := m.track(ctx)
	article, err := m.client.CreateArticle(taskCtx, token, title, description)

	current := m.finish(seq, epoch, func() {
		if err == nil {
			m.collection.Append(article)
			m.draft.Clear()
		}
	})
	if !current {
		m.logger.Debug("discarding result after reset", zap.String("op", "create article"), zap.NamedError("result", err))
		return strapi.Article{}, notify.Reported(ErrReset)
	}

	if err != nil {
		return strapi.Article{}, m.fail(err, TitleCreateFailed, zap.String("op", "create article"))
	}
	m.notifier.Notify(notify.Success(TitleCreated))
	return article, nil
}

// Edit updates an article and patches the local entry with the supplied values
func (m *Manager) Edit(ctx context.Context, id int64, title, description string) error {
	token, ok := m.tokens.LoadToken()
	if !ok {
		return ErrNoSession
	}

	taskCtx, seq := m.begin(ctx, id)
	err := m.client.UpdateArticle(taskCtx, token, id, title, description)

	return m.settle(id, seq, err, mutation{
		op:           "update article",
		success:      TitleUpdated,
		failure:      TitleUpdateFailed,
		applyLocally: func() { m.collection.Patch(id, title, description) },
	})
}

// Delete deletes an article and removes the local entry
func (m *Manager) Delete(ctx context.Context, id int64) error {
	token, ok := m.tokens.LoadToken()
	if !ok {
		return ErrNoSession
	}

	taskCtx, seq := m.begin(ctx, id)
	err := m.client.DeleteArticle(taskCtx, token, id)

	return m.settle(id, seq, err, mutation{
		op:           "delete article",
		success:      TitleDeleted,
		failure:      TitleDeleteFailed,
		applyLocally: func() { m.collection.Remove(id) },
	})
}

// Reset cancels any in-flight operation and empties the local state,
// results arriving afterwards are discarded
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, t := range m.inflight {
		t.cancel()
		delete(m.inflight, id)
	}
	for seq, cancel := range m.pending {
		cancel()
		delete(m.pending, seq)
	}
	m.epoch++

	m.collection.Reset()
	m.draft.Clear()
}

type mutation struct {
	op           string
	success      string
	failure      string
	applyLocally func()
}

// begin registers a new operation on the article, cancelling the one it supersedes
func (m *Manager) begin(ctx context.Context, id int64) (context.Context, uint64) {
	taskCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.inflight[id]; ok {
		prev.cancel()
	}
	m.seq++
	m.inflight[id] = task{m.seq, cancel}
	return taskCtx, m.seq
}

// track registers an operation on the whole collection so Reset can cancel it
func (m *Manager) track(ctx context.Context) (context.Context, uint64, uint64) {
	taskCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.pending[m.seq] = cancel
	return taskCtx, m.seq, m.epoch
}

// finish runs apply if no Reset happened since the operation was tracked,
// and reports whether it did
func (m *Manager) finish(seq, epoch uint64, apply func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cancel, ok := m.pending[seq]; ok {
		cancel()
		delete(m.pending, seq)
	}
	if epoch != m.epoch {
		return false
	}
	apply()
	return true
}

// settle applies the outcome of an operation unless a newer one on the same article replaced it
func (m *Manager) settle(id int64, seq uint64, err error, mut mutation) error {
	logger := m.logger.With(zap.String("op", mut.op), zap.Int64("article_id", id))

	m.mu.Lock()
	current, ok := m.inflight[id]
	if !ok || current.seq != seq {
		m.mu.Unlock()
		logger.Debug("discarding superseded result", zap.NamedError("result", err))
		return notify.Reported(ErrSuperseded)
	}
	delete(m.inflight, id)
	current.cancel()

	apply := err == nil || (m.policy == PolicyWriteThrough && strapi.IsServerError(err))
	if apply {
		mut.applyLocally()
	}
	m.mu.Unlock()

	if err == nil {
		m.notifier.Notify(notify.Success(mut.success))
		return nil
	}
	return m.fail(err, mut.failure, zap.String("op", mut.op), zap.Int64("article_id", id))
}

// fail presents the error on the channel its category belongs to:
// server errors are notified, anything else goes to the diagnostic logger
func (m *Manager) fail(err error, title string, fields ...zap.Field) error {
	var serverErr strapi.ServerError
	if errors.As(err, &serverErr) {
		m.notifier.Notify(notify.Failure(title, serverErr.Message))
		return notify.Reported(err)
	}

	m.logger.Error("request failed", append(fields, zap.Error(err))...)
	return notify.Reported(err)
}
