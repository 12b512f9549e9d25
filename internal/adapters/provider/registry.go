// Package provider is the integration boundary to match event
// sources. Integrations register themselves by name from an init
// function; the service looks one up right before a conversion
// starts and refuses to run when it is not compiled in.
package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fieldline/spadl/internal/domain/event"
)

// Loader loads one match worth of events from a provider-specific
// source reference. For file-backed integrations the source is a
// path.
type Loader interface {
	Load(ctx context.Context, source string) (*event.Dataset, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Loader)
)

// Register makes an integration available under the given name.
// Integrations register from init, so an empty name, a nil loader or
// a duplicate registration is a programming error and panics.
func Register(name string, l Loader) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		panic("provider: Register with empty name")
	}
	if l == nil {
		panic("provider: Register with nil loader")
	}
	if _, dup := registry[name]; dup {
		panic("provider: Register called twice for " + name)
	}
	registry[name] = l
}

// Lookup returns the integration registered under name. A missing
// integration is reported as ErrMissingIntegration.
func Lookup(name string) (Loader, error) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrMissingIntegration, name, registered())
	}
	return l, nil
}

// Names lists the registered integrations in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return registered()
}

func registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
