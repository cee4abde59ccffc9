package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/shortcode/lang"
)

// Map is a mutable, concurrency-safe directive registry.
// The zero value is empty and ready to use.
type Map struct {
	mu       sync.RWMutex
	handlers map[string]lang.Handler
}

// New creates an empty registry.
func New() *Map {
	return &Map{handlers: make(map[string]lang.Handler)}
}

// Register binds a handler to a directive name, replacing any previous
// binding.
func (m *Map) Register(name string, handler lang.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handlers == nil {
		m.handlers = make(map[string]lang.Handler)
	}

	m.handlers[name] = handler
}

// RegisterFunc binds a handler function to a directive name.
func (m *Map) RegisterFunc(name string, fn lang.HandlerFunc) {
	m.Register(name, fn)
}

// Lookup implements [lang.Registry].
func (m *Map) Lookup(name string) (lang.Handler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	handler, found := m.handlers[name]

	return handler, found
}

// Names returns all registered directive names in sorted order.
func (m *Map) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.handlers))
	for name := range m.handlers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Suggest returns up to max registered names that fuzzy-match the given
// name, best match first. Useful for "did you mean" diagnostics when a
// directive is unknown.
func (m *Map) Suggest(name string, max int) []string {
	matches := fuzzy.Find(name, m.Names())
	if len(matches) > max {
		matches = matches[:max]
	}

	suggestions := make([]string, len(matches))
	for i, match := range matches {
		suggestions[i] = match.Str
	}

	return suggestions
}

// Funcs is an immutable function-map registry for embedders that build
// their handler set once. It implements [lang.Registry].
type Funcs map[string]func(context.Context, *lang.Call) (string, error)

// Lookup implements [lang.Registry].
func (f Funcs) Lookup(name string) (lang.Handler, bool) {
	fn, found := f[name]
	if !found {
		return nil, false
	}

	return lang.HandlerFunc(fn), true
}
