package mock

import (
	"context"

	"github.com/articledesk/articles-cli/internal/cloud/strapi"
)

// StrapiClient is a mocked Strapi client
type StrapiClient struct {
	strapi.Client
	RegisterFn      func(ctx context.Context, username, email, password string) (strapi.AuthResponse, error)
	LoginFn         func(ctx context.Context, identifier, password string) (strapi.AuthResponse, error)
	CurrentUserFn   func(ctx context.Context, token string) (strapi.Profile, error)
	ArticlesFn      func(ctx context.Context, token string) ([]strapi.Article, error)
	CreateArticleFn func(ctx context.Context, token, title, description string) (strapi.Article, error)
	UpdateArticleFn func(ctx context.Context, token string, id int64, title, description string) error
	DeleteArticleFn func(ctx context.Context, token string, id int64) error
	StatusFn        func(ctx context.Context) error
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) Register(ctx context.Context, username, email, password string) (strapi.AuthResponse, error) {
	if sc.RegisterFn != nil {
		return sc.RegisterFn(ctx, username, email, password)
	}
	return sc.Client.Register(ctx, username, email, password)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) Login(ctx context.Context, identifier, password string) (strapi.AuthResponse, error) {
	if sc.LoginFn != nil {
		return sc.LoginFn(ctx, identifier, password)
	}
	return sc.Client.Login(ctx, identifier, password)
}

// CurrentUser calls the mocked CurrentUser implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) CurrentUser(ctx context.Context, token string) (strapi.Profile, error) {
	if sc.CurrentUserFn != nil {
		return sc.CurrentUserFn(ctx, token)
	}
	return sc.Client.CurrentUser(ctx, token)
}

// Articles calls the mocked Articles implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) Articles(ctx context.Context, token string) ([]strapi.Article, error) {
	if sc.ArticlesFn != nil {
		return sc.ArticlesFn(ctx, token)
	}
	return sc.Client.Articles(ctx, token)
}

// CreateArticle calls the mocked CreateArticle implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) CreateArticle(ctx context.Context, token, title, description string) (strapi.Article, error) {
	if sc.CreateArticleFn != nil {
		return sc.CreateArticleFn(ctx, token, title, description)
	}
	return sc.Client.CreateArticle(ctx, token, title, description)
}

// UpdateArticle calls the mocked UpdateArticle implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) UpdateArticle(ctx context.Context, token string, id int64, title, description string) error {
	if sc.UpdateArticleFn != nil {
		return sc.UpdateArticleFn(ctx, token, id, title, description)
	}
	return sc.Client.UpdateArticle(ctx, token, id, title, description)
}

// DeleteArticle calls the mocked DeleteArticle implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) DeleteArticle(ctx context.Context, token string, id int64) error {
	if sc.DeleteArticleFn != nil {
		return sc.DeleteArticleFn(ctx, token, id)
	}
	return sc.Client.DeleteArticle(ctx, token, id)
}

// Status calls the mocked Status implementation if provided,
// otherwise the call falls back to the underlying strapi.Client implementation.
// NOTE: this may panic if the underlying strapi.Client is left undefined
func (sc StrapiClient) Status(ctx context.Context) error {
	if sc.StatusFn != nil {
		return sc.StatusFn(ctx)
	}
	return sc.Client.Status(ctx)
}
