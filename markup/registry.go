package markup

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Handler is a function to interpret a tag. A handler inspects the tag and
// modifies the rendering context accordingly. It returns true if it has
// consumed the tag, false otherwise. Tags not consumed by any handler are output
// as literal text.
type Handler func(tag Tag, ctx *Context) bool

// Registry holds tag handlers, keyed by case-folded tag name.
//
// Implementations must be safe for concurrent use. Handlers, once registered,
// are never removed.
type Registry interface {
	Register(name string, h Handler)
	Snapshot() Handlers
}

// Handlers is an immutable view of the handlers of a registry at a given point
// in time.
type Handlers struct {
	table map[string][]Handler
}

// Lookup returns the handlers for a tag name in registration order.
// Clients must not modify the returned slice.
func (hs Handlers) Lookup(name string) []Handler {
	if hs.table == nil {
		return nil
	}
	return hs.table[name]
}

// Len returns the number of tag names with at least one handler.
func (hs Handlers) Len() int {
	return len(hs.table)
}

// HandlerRegistry is the default implementation of Registry. Registering a
// handler copies the handler table and publishes the copy atomically; readers
// never block.
type HandlerRegistry struct {
	mu    sync.Mutex // serializes writers
	table atomic.Pointer[map[string][]Handler]
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *HandlerRegistry {
	r := &HandlerRegistry{}
	empty := make(map[string][]Handler)
	r.table.Store(&empty)
	return r
}

// Register appends a handler for tag name. Names are case-insensitive. A nil
// handler or an empty name is ignored.
func (r *HandlerRegistry) Register(name string, h Handler) {
	if name == "" || h == nil {
		tracer().Errorf("markup: ignoring registration of handler for tag %q", name)
		return
	}
	name = foldName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.load()
	table := make(map[string][]Handler, len(old)+1)
	for k, v := range old {
		table[k] = v
	}
	table[name] = append(slices.Clip(old[name]), h)
	r.table.Store(&table)
	tracer().Debugf("markup: registered handler #%d for tag <%s>", len(table[name]), name)
}

// Snapshot is part of interface Registry.
func (r *HandlerRegistry) Snapshot() Handlers {
	return Handlers{table: r.load()}
}

func (r *HandlerRegistry) load() map[string][]Handler {
	if t := r.table.Load(); t != nil {
		return *t
	}
	return nil
}

var _ Registry = &HandlerRegistry{}

var (
	defaultRegistry     *HandlerRegistry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide handler registry. It is created on
// first use and holds handlers for the built-in tags.
func DefaultRegistry() *HandlerRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// Register adds a handler for a tag to the process-wide registry. Handlers
// registered earlier for the same tag name take precedence.
func Register(name string, h Handler) {
	DefaultRegistry().Register(name, h)
}
