// Package registry provides a global registry of terminal drivers.
// Drivers register themselves in init() functions, so the CLI can list and
// open them by name without importing each one directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// ErrUnknownDriver is returned by Create for a name nobody registered.
var ErrUnknownDriver = errors.New("registry: unknown driver")

// Options is passed to a driver factory when the surface is opened.
type Options struct {
	// Width and Height are the grid the game draws on.
	Width  int
	Height int

	// Interrupt is called when the user presses Ctrl+C. The terminal is
	// in raw mode, so drivers must deliver it themselves.
	Interrupt func()

	Logger *log.Logger
}

// Factory opens a driver. The returned surface owns the terminal until
// Close is called.
type Factory func(opts Options) (core.Surface, error)

// DriverInfo describes a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	drivers = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := drivers[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}
	drivers[name] = entry{factory: f, description: description}
}

// List returns all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(drivers))
	for name, e := range drivers {
		result = append(result, DriverInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create opens the named driver.
func Create(name string, opts Options) (core.Surface, error) {
	mu.RLock()
	e, ok := drivers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, name)
	}
	if opts.Interrupt == nil {
		opts.Interrupt = func() {}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: open driver %q: %w", name, err)
	}
	return s, nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := drivers[name]
	return ok
}
