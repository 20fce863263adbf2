package articles

import (
	"sync"

	"github.com/articledesk/articles-cli/internal/cloud/strapi"
)

// Collection is the ordered, id-unique local copy of the user's articles
type Collection struct {
	mu       sync.RWMutex
	articles []strapi.Article
}

// All returns a copy of the articles in order
func (c *Collection) All() []strapi.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]strapi.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Len returns the number of articles
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.articles)
}

// Get finds the article by id
func (c *Collection) Get(id int64) (strapi.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.indexOf(id); idx >= 0 {
		return c.articles[idx], true
	}
	return strapi.Article{}, false
}

// Replace swaps the collection contents for the provided articles,
// keeping the first occurrence of any repeated id
func (c *Collection) Replace(articles []strapi.Article) {
	seen := make(map[int64]struct{}, len(articles))
	next := make([]strapi.Article, 0, len(articles))
	for _, article := range articles {
		if _, ok := seen[article.ID]; ok {
			continue
		}
		seen[article.ID] = struct{}{}
		next = append(next, article)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = next
}

// Append adds the article to the end of the collection.
// An article whose id is already present replaces that entry in place.
func (c *Collection) Append(article strapi.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(article.ID); idx >= 0 {
		c.articles[idx] = article
		return
	}
	c.articles = append(c.articles, article)
}

// Patch sets the title and description of the matching article
func (c *Collection) Patch(id int64, title, description string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.articles[idx].Attributes.Title = title
	c.articles[idx].Attributes.Description = description
	return true
}

// Remove deletes the matching article
func (c *Collection) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}

	next := make([]strapi.Article, 0, len(c.articles)-1)
	next = append(next, c.articles[:idx]...)
	next = append(next, c.articles[idx+1:]...)
	c.articles = next
	return true
}

// Reset empties the collection
func (c *Collection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = nil
}

func (c *Collection) indexOf(id int64) int {
	for i, article := range c.articles {
		if article.ID == id {
			return i
		}
	}
	return -1
}
