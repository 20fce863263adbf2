package strapitest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/articledesk/articles-cli/internal/cloud/strapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type articleRequest struct {
	Data *strapi.ArticleData `json:"data"`
}

func (req *articleRequest) Bind(r *http.Request) error {
	if req.Data == nil {
		return errors.New(`Missing "data" payload in the request body`)
	}
	if req.Data.Title == "" {
		return errors.New("title must be defined.")
	}
	return nil
}

type articleListResponse struct {
	Data []strapi.Article       `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

type articleResponse struct {
	Data strapi.Article         `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

// SeedArticle stores an article directly
func (s *Server) SeedArticle(title, description string) strapi.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addArticle(strapi.ArticleData{Title: title, Description: description})
}

func (s *Server) addArticle(data strapi.ArticleData) strapi.Article {
	now := s.now().UTC()
	article := strapi.Article{
		ID: s.nextID,
		Attributes: strapi.ArticleAttributes{
			Title:       data.Title,
			Description: data.Description,
			CreatedAt:   &now,
			UpdatedAt:   &now,
			PublishedAt: &now,
		},
	}
	s.nextID++
	s.articles = append(s.articles, article)
	return article
}

func (s *Server) indexOf(id int64) int {
	for i, article := range s.articles {
		if article.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	articles := s.Articles()
	render.JSON(w, r, articleListResponse{
		Data: articles,
		Meta: map[string]interface{}{
			"pagination": map[string]interface{}{
				"page":      1,
				"pageSize":  25,
				"pageCount": 1,
				"total":     len(articles),
			},
		},
	})
}

func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := render.Bind(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	article := s.addArticle(*req.Data)
	s.mu.Unlock()

	render.JSON(w, r, articleResponse{Data: article, Meta: map[string]interface{}{}})
}

func (s *Server) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		renderError(w, r, http.StatusNotFound, "Not Found")
		return
	}

	var req articleRequest
	if err := render.Bind(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		renderError(w, r, http.StatusNotFound, "Not Found")
		return
	}
	now := s.now().UTC()
	s.articles[idx].Attributes.Title = req.Data.Title
	s.articles[idx].Attributes.Description = req.Data.Description
	s.articles[idx].Attributes.UpdatedAt = &now
	article := s.articles[idx]
	s.mu.Unlock()

	render.JSON(w, r, articleResponse{Data: article, Meta: map[string]interface{}{}})
}

func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		renderError(w, r, http.StatusNotFound, "Not Found")
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		renderError(w, r, http.StatusNotFound, "Not Found")
		return
	}
	article := s.articles[idx]
	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	s.mu.Unlock()

	render.JSON(w, r, articleResponse{Data: article, Meta: map[string]interface{}{}})
}

func articleID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
	return id, err == nil
}
