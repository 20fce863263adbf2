package articles

import (
	"sync"
)

// Draft is the title and description input buffer for a new article
type Draft struct {
	mu          sync.Mutex
	title       string
	description string
}

// Set fills the buffer
func (d *Draft) Set(title, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title, d.description = title, description
}

// SetTitle fills the title
func (d *Draft) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// SetDescription fills the description
func (d *Draft) SetDescription(description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.description = description
}

// Values returns the buffered title and description
func (d *Draft) Values() (string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title, d.description
}

// Clear empties the buffer
func (d *Draft) Clear() {
	d.Set("", "")
}
