// Package creature holds the creature model and the mind that decides
// how a creature responds to interaction.
package creature

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nidhogg/creature-mind/internal/adaptation"
	"github.com/nidhogg/creature-mind/internal/emotion"
	"github.com/nidhogg/creature-mind/internal/evolution"
	"github.com/nidhogg/creature-mind/internal/trait"
)

// Personality is the evolving personality state of one creature. Base
// is the stored vector that evolution writes to; Initial never changes
// after creation and anchors development analysis.
type Personality struct {
	Base           trait.Vector         `json:"base_traits"`
	Initial        trait.Vector         `json:"initial_traits"`
	SimpleTraits   []string             `json:"simple_traits,omitempty"`
	Archetype      string               `json:"archetype,omitempty"`
	Shifts         []evolution.Shift    `json:"shifts,omitempty"`
	EmotionalState *emotion.State       `json:"emotional_state,omitempty"`
	Learnings      []*adaptation.Memory `json:"learnings,omitempty"`
}

// Creature is one virtual creature instance. The mind pipeline and the
// lifecycle heartbeat both mutate a creature concurrently; callers
// outside this package take the creature lock before reading or
// writing any mutable field.
type Creature struct {
	mu sync.RWMutex

	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Species         string      `json:"species"`
	TemplateID      string      `json:"template_id"`
	Personality     Personality `json:"personality"`
	Stats           *Stats      `json:"stats"`
	CreatedAt       time.Time   `json:"created_at"`
	LastInteraction time.Time   `json:"last_interaction_time"`
	LastStatsUpdate time.Time   `json:"last_stats_update"`
}

// New builds a creature from a template. The personality comes from
// the archetype when set, otherwise from the simple trait words.
func New(name string, tpl *Template, archetype string, simpleTraits []string, now time.Time) *Creature {
	var base trait.Vector
	if v, ok := trait.GetArchetype(archetype); ok {
		base = v
	} else if len(simpleTraits) > 0 {
		base = trait.FromSimpleTraits(simpleTraits)
	} else if v, ok := trait.GetArchetype(tpl.DefaultArchetype); ok {
		base = v
	} else {
		base = trait.Neutral()
	}

	return &Creature{
		ID:         uuid.New(),
		Name:       name,
		Species:    tpl.Species,
		TemplateID: tpl.ID,
		Personality: Personality{
			Base:         base,
			Initial:      base,
			SimpleTraits: simpleTraits,
			Archetype:    archetype,
		},
		Stats:           NewStats(tpl.StatConfigs),
		CreatedAt:       now,
		LastInteraction: now,
		LastStatsUpdate: now,
	}
}

// Lock takes the creature's write lock.
func (c *Creature) Lock() { c.mu.Lock() }

// Unlock releases the creature's write lock.
func (c *Creature) Unlock() { c.mu.Unlock() }

// RLock takes the creature's read lock.
func (c *Creature) RLock() { c.mu.RLock() }

// RUnlock releases the creature's read lock.
func (c *Creature) RUnlock() { c.mu.RUnlock() }

// HoursSinceInteraction returns how long the creature has been idle.
func (c *Creature) HoursSinceInteraction(now time.Time) float64 {
	return now.Sub(c.LastInteraction).Hours()
}

// ApplyInactivityDecay decays stats for the time since the last
// update and marks the stats fresh.
func (c *Creature) ApplyInactivityDecay(now time.Time) {
	hours := now.Sub(c.LastStatsUpdate).Hours()
	c.Stats.Decay(hours)
	c.LastStatsUpdate = now
}

// Mood derives the creature's mood label from its stats.
func (c *Creature) Mood() string {
	happiness := c.Stats.Get("happiness")
	energy := c.Stats.Get("energy")

	switch {
	case happiness >= 80 && energy >= 70:
		return "joyful"
	case happiness >= 60 && energy >= 50:
		return "content"
	case happiness < 30:
		return "unhappy"
	case energy < 30:
		return "tired"
	default:
		return "neutral"
	}
}

// PruneShifts drops expired personality shifts.
func (c *Creature) PruneShifts(now time.Time) {
	active := c.Personality.Shifts[:0]
	for _, s := range c.Personality.Shifts {
		if !s.Expired(now) {
			active = append(active, s)
		}
	}
	c.Personality.Shifts = active
}
