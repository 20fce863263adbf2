package strapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/articledesk/articles-cli/internal/utils/api"
)

const (
	articlesPath       = "/articles"
	articlePathPattern = articlesPath + "/%d"
)

// Article is a CMS article
type Article struct {
	ID         int64             `json:"id"`
	Attributes ArticleAttributes `json:"attributes"`
}

// ArticleAttributes are the editable and server-managed fields of an article
type ArticleAttributes struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ArticleData is the writable content of an article
type ArticleData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type articlePayload struct {
	Data ArticleData `json:"data"`
}

type articlesResponse struct {
	Data []Article `json:"data"`
}

type articleResponse struct {
	Data *Article `json:"data"`
}

func (c *client) Articles(ctx context.Context, token string) ([]Article, error) {
	res, err := c.do(ctx, http.MethodGet, articlesPath, api.RequestOptions{Token: token})
	if err != nil {
		return nil, err
	}
	if !isSuccess(res) {
		return nil, parseResponseError(res)
	}

	var payload articlesResponse
	if err := decode(res, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []Article{}, nil
	}
	return payload.Data, nil
}

func (c *client) CreateArticle(ctx context.Context, token, title, description string) (Article, error) {
	res, err := c.doJSON(
		ctx,
		http.MethodPost,
		articlesPath,
		articlePayload{ArticleData{title, description}},
		api.RequestOptions{Token: token},
	)
	if err != nil {
		return Article{}, err
	}
	if !isSuccess(res) {
		return Article{}, parseResponseError(res)
	}

	var payload articleResponse
	if err := decode(res, &payload); err != nil {
		return Article{}, err
	}
	if payload.Data == nil {
		return Article{}, ServerError{Status: res.StatusCode, Message: "response is missing the created article"}
	}
	return *payload.Data, nil
}

func (c *client) UpdateArticle(ctx context.Context, token string, id int64, title, description string) error {
	res, err := c.doJSON(
		ctx,
		http.MethodPut,
		fmt.Sprintf(articlePathPattern, id),
		articlePayload{ArticleData{title, description}},
		api.RequestOptions{Token: token},
	)
	if err != nil {
		return err
	}
	if !isSuccess(res) {
		return parseStatusError(res)
	}
	discard(res)
	return nil
}

func (c *client) DeleteArticle(ctx context.Context, token string, id int64) error {
	res, err := c.do(
		ctx,
		http.MethodDelete,
		fmt.Sprintf(articlePathPattern, id),
		api.RequestOptions{Token: token},
	)
	if err != nil {
		return err
	}
	if !isSuccess(res) {
		return parseStatusError(res)
	}
	discard(res)
	return nil
}
