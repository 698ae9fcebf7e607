package tools

import (
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/jarvis-assistant/models"
)

type registryEntry struct {
	meta models.ToolMetadata
	impl Tool
}

// Registry is a concurrent-read, serialized-write tool store
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Register upserts a tool's metadata and implementation. A nil impl registers
// metadata only; a later Register for the same name replaces both.
func (r *Registry) Register(meta models.ToolMetadata, impl Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[meta.Name] = &registryEntry{meta: meta, impl: impl}
}

// Bind attaches an implementation to an already registered tool.
// Returns false when the tool is unknown.
func (r *Registry) Bind(name string, impl Tool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[name]
	if !ok {
		return false
	}
	entry.impl = impl
	return true
}

// Get returns a tool's metadata by name
func (r *Registry) Get(name string) (models.ToolMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return models.ToolMetadata{}, false
	}
	return entry.meta, true
}

// Implementation returns the tool's implementation, if one is bound
func (r *Registry) Implementation(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok || entry.impl == nil {
		return nil, false
	}
	return entry.impl, true
}

// All returns every registered tool's metadata, sorted by name
func (r *Registry) All() []models.ToolMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]models.ToolMetadata, 0, len(r.entries))
	for _, entry := range r.entries {
		all = append(all, entry.meta)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// FindByCategory returns tools in the given category, sorted by name
func (r *Registry) FindByCategory(category models.ToolCategory) []models.ToolMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []models.ToolMetadata
	for _, entry := range r.entries {
		if entry.meta.Category == category {
			matches = append(matches, entry.meta)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// FindByKeyword returns tools whose keywords contain text as a substring
func (r *Registry) FindByKeyword(text string) []models.ToolMetadata {
	needle := strings.ToLower(text)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []models.ToolMetadata
	for _, entry := range r.entries {
		for _, keyword := range entry.meta.Keywords {
			if strings.Contains(strings.ToLower(keyword), needle) {
				matches = append(matches, entry.meta)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// Len returns the number of registered tools
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
