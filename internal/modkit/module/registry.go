package module

import (
	"fmt"
	"sync"
)

// process wide port registry; api.Mount registers auth and presence before the
// modules that guard their routes with them are built
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the ports a module exposes under its name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// RegisterModule registers m.Ports() under m.Name() and returns m
func RegisterModule(m Module) Module {
	Register(m.Name(), m.Ports())
	return m
}

// PortsAs fetches the ports registered for name as T, or the first exported field of them that is a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return portOf[T](v)
}

// MustPortsAs panics when name is unregistered or holds another type
func MustPortsAs[T any](name string) T {
	out, ok := PortsAs[T](name)
	if !ok {
		var zero T
		panic(fmt.Sprintf("module %q did not register ports of type %T", name, zero))
	}
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
