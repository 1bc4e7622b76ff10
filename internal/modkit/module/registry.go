package module

import (
	"sort"
	"sync"
)

// process wide registry of port sets, filled during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set of a module under its name
func Register(m Module) {
	mu.Lock()
	reg[m.Name()] = m.Ports()
	mu.Unlock()
}

// PortsAs fetches and type asserts a port set by module name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
