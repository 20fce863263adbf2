// Package strapitest provides an in-process CMS server for tests
package strapitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/articledesk/articles-cli/internal/cloud/strapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	apiPrefix = "/api"

	defaultSecret = "strapitest-secret"
)

// Request is a request received by the Server
type Request struct {
	Method        string
	Path          string
	Authorization string
}

// Server is a fake CMS serving the auth, user and article routes
type Server struct {
	server *httptest.Server
	secret []byte
	now    func() time.Time

	mu         sync.Mutex
	users      []account
	articles   []strapi.Article
	nextUserID int64
	nextID     int64
	requests   []Request
	failures   map[string]failure
}

type account struct {
	profile      strapi.Profile
	passwordHash []byte
}

type failure struct {
	status  int
	message string
}

// NewServer starts a new Server which is closed when the test completes
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:     []byte(defaultSecret),
		now:        time.Now,
		nextUserID: 1,
		nextID:     1,
		failures:   map[string]failure{},
	}
	s.server = httptest.NewServer(s.router())
	t.Cleanup(s.server.Close)

	return s
}

// URL returns the API base url
func (s *Server) URL() string {
	return s.server.URL + apiPrefix
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// FailNext makes the next request with the method and API path
// fail with the status and message
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+apiPrefix+path] = failure{status, message}
}

// Articles returns the stored articles
func (s *Server) Articles() []strapi.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]strapi.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.injectFailures)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route(apiPrefix, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]interface{}{"status": "ok"})
		})

		r.Post("/auth/local/register", s.register)
		r.Post("/auth/local", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticated)

			r.Get("/users/me", s.currentUser)

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", s.listArticles)
				r.Post("/", s.createArticle)

				r.Route("/{articleID}", func(r chi.Router) {
					r.Put("/", s.updateArticle)
					r.Delete("/", s.deleteArticle)
				})
			})
		})
	})

	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		f, ok := s.failures[key]
		delete(s.failures, key)
		s.mu.Unlock()

		if ok {
			renderError(w, r, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}
