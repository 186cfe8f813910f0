package creature

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry holds the live creatures by ID.
type Registry struct {
	mu        sync.RWMutex
	creatures map[uuid.UUID]*Creature
	logger    *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		creatures: make(map[uuid.UUID]*Creature),
		logger:    logger,
	}
}

// Register adds a creature to the registry.
func (r *Registry) Register(c *Creature) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creatures[c.ID] = c
	r.logger.Info("registered creature",
		zap.String("id", c.ID.String()),
		zap.String("name", c.Name),
		zap.String("template", c.TemplateID))
}

// Get returns a creature by ID.
func (r *Registry) Get(id uuid.UUID) (*Creature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creatures[id]
	return c, ok
}

// List returns all registered creatures.
func (r *Registry) List() []*Creature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Creature, 0, len(r.creatures))
	for _, c := range r.creatures {
		result = append(result, c)
	}
	return result
}

// Remove deletes a creature from the registry.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creatures[id]; !ok {
		return false
	}
	delete(r.creatures, id)
	return true
}
