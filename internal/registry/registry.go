// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and
// the pipeline to discover and instantiate engines without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/led-arcade/internal/game"
)

// ErrUnknownVariant is returned by Create for an unregistered ID.
var ErrUnknownVariant = errors.New("unknown variant")

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new engine.
type Factory func() game.Engine

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a fresh engine by its ID.
func Create(id string) (game.Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownVariant, id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
