package lifecycle

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/creature"
	"github.com/nidhogg/creature-mind/internal/evolution"
)

const (
	// idleBeforeSettling is how long a creature must go without
	// interaction before time alone starts shaping its personality.
	idleBeforeSettling = 24 * time.Hour
	// settlingHorizonHours scales idle time into shift impact.
	settlingHorizonHours = 720.0
)

// Heartbeat is a ClockListener that keeps creatures alive between
// interactions: stats decay, expired shifts are pruned, and long
// stretches of quiet slowly settle the personality.
type Heartbeat struct {
	interval time.Duration
	registry *creature.Registry
	evo      *evolution.Engine
	logger   *zap.Logger

	mu          sync.Mutex
	lastBeat    time.Time
	lastSettled map[uuid.UUID]time.Time
}

// NewHeartbeat creates a heartbeat that fires at the given interval of
// simulated time.
func NewHeartbeat(interval time.Duration, registry *creature.Registry, logger *zap.Logger) *Heartbeat {
	return &Heartbeat{
		interval:    interval,
		registry:    registry,
		evo:         evolution.NewEngine(),
		logger:      logger,
		lastSettled: make(map[uuid.UUID]time.Time),
	}
}

// FireNow forces an immediate beat, bypassing the interval check.
// Returns how many creatures were touched.
func (h *Heartbeat) FireNow(now time.Time) int {
	return h.beat(now)
}

// OnTick implements ClockListener.
func (h *Heartbeat) OnTick(simTime time.Time) {
	h.mu.Lock()
	if h.lastBeat.IsZero() {
		h.lastBeat = simTime
		h.mu.Unlock()
		return
	}
	if simTime.Sub(h.lastBeat) < h.interval {
		h.mu.Unlock()
		return
	}
	h.lastBeat = simTime
	h.mu.Unlock()

	h.beat(simTime)
}

func (h *Heartbeat) beat(now time.Time) int {
	creatures := h.registry.List()
	for _, c := range creatures {
		c.Lock()
		c.ApplyInactivityDecay(now)
		c.PruneShifts(now)
		h.settle(c, now)
		c.Unlock()
	}
	h.logger.Debug("heartbeat fired",
		zap.Int("creatures", len(creatures)),
		zap.Time("sim_time", now))
	return len(creatures)
}

// settle records a time-passage shift for a creature that has been
// idle long enough, at most once per idle period. The caller holds
// the creature's write lock.
func (h *Heartbeat) settle(c *creature.Creature, now time.Time) {
	idle := now.Sub(c.LastInteraction)
	if idle < idleBeforeSettling {
		return
	}

	h.mu.Lock()
	last, ok := h.lastSettled[c.ID]
	if ok && now.Sub(last) < idleBeforeSettling {
		h.mu.Unlock()
		return
	}
	h.lastSettled[c.ID] = now
	h.mu.Unlock()

	impact := idle.Hours() / settlingHorizonHours
	if impact > 1.0 {
		impact = 1.0
	}
	ev := evolution.Event{EmotionalImpact: impact}
	shifts := h.evo.CreateShifts(evolution.TriggerTimePassage, ev, now)
	c.Personality.Shifts = append(c.Personality.Shifts, shifts...)
	c.Personality.Base = h.evo.Evolve(c.Personality.Base, c.Personality.Shifts, nil, nil, now)

	h.logger.Debug("settled idle creature",
		zap.String("creature", c.Name),
		zap.Float64("idle_hours", idle.Hours()))
}
