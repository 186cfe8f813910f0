// Package lifecycle drives the passage of time for creatures: a clock
// ticks the simulation forward and a heartbeat applies idle stat decay
// and slow personality settling to every registered creature.
package lifecycle

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ClockListener receives simulation tick events.
type ClockListener interface {
	OnTick(simTime time.Time)
}

// Clock drives the simulation with a configurable tick rate and time
// speed. A speed above 1.0 makes creatures live faster than realtime.
type Clock struct {
	speed     float64
	interval  time.Duration
	listeners []ClockListener
	simTime   time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc
	logger    *zap.Logger
}

// NewClock creates a clock with the given tick interval and speed multiplier.
func NewClock(interval time.Duration, speed float64, logger *zap.Logger) *Clock {
	return &Clock{
		speed:    speed,
		interval: interval,
		simTime:  time.Now(),
		logger:   logger,
	}
}

// AddListener registers a tick listener.
func (c *Clock) AddListener(l ClockListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// SimTime returns the current simulated time.
func (c *Clock) SimTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.simTime
}

// SetSpeed changes the time multiplier.
func (c *Clock) SetSpeed(speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = speed
}

// Start begins the tick loop in a background goroutine.
func (c *Clock) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.loop(ctx)
	c.logger.Info("lifecycle clock started",
		zap.Duration("interval", c.interval),
		zap.Float64("speed", c.speed))
}

// Stop halts the tick loop.
func (c *Clock) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.logger.Info("lifecycle clock stopped")
	}
}

func (c *Clock) loop(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Clock) tick() {
	c.mu.Lock()
	c.simTime = c.simTime.Add(
		time.Duration(float64(c.interval) * c.speed),
	)
	st := c.simTime
	listeners := make([]ClockListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.OnTick(st)
	}
}
