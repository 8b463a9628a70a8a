package dragorder

import (
	"fmt"
	"sync"

	"github.com/idursun/dragorder/internal/tree"
)

// DefaultRegistry is used by controllers created without an explicit one.
var DefaultRegistry = NewRegistry()

// Registry maps containers to the controllers that own them. Controllers
// consult it to find the receiving side of a cross-container transfer.
type Registry struct {
	mu          sync.RWMutex
	controllers map[*tree.Node]*Controller
}

func NewRegistry() *Registry {
	return &Registry{controllers: make(map[*tree.Node]*Controller)}
}

func (r *Registry) register(c *Controller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.controllers[c.container]; ok && existing != c {
		return fmt.Errorf("dragorder: container %s already has a controller", c.container)
	}
	r.controllers[c.container] = c
	return nil
}

func (r *Registry) unregister(c *Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.controllers[c.container] == c {
		delete(r.controllers, c.container)
	}
}

// Lookup returns the controller owning container, or nil.
func (r *Registry) Lookup(container *tree.Node) *Controller {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.controllers[container]
}
