package lifecycle

import (
	"math"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/creature"
	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/evolution"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type recordingListener struct {
	ticks []time.Time
}

func (r *recordingListener) OnTick(t time.Time) {
	r.ticks = append(r.ticks, t)
}

func TestClockTickAdvancesSimTime(t *testing.T) {
	c := NewClock(time.Second, 60.0, zap.NewNop())
	start := c.SimTime()

	var l recordingListener
	c.AddListener(&l)

	c.tick()
	c.tick()

	if got := c.SimTime().Sub(start); got != 2*time.Minute {
		t.Errorf("sim time advanced %v, want 2m", got)
	}
	if len(l.ticks) != 2 {
		t.Fatalf("listener saw %d ticks, want 2", len(l.ticks))
	}
	if !l.ticks[1].After(l.ticks[0]) {
		t.Error("tick times not increasing")
	}
}

func newIdleCreature(idle time.Duration) *creature.Creature {
	c := creature.New("Mop", creature.BaseTemplates["base_mammal"], "", nil, testNow.Add(-idle))
	return c
}

func TestHeartbeatDecaysStats(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(10 * time.Hour)
	r.Register(c)

	h := NewHeartbeat(time.Minute, r, zap.NewNop())
	if touched := h.FireNow(testNow); touched != 1 {
		t.Fatalf("FireNow touched %d creatures, want 1", touched)
	}

	if got := c.Stats.Get("happiness"); math.Abs(got-74) > 1e-9 {
		t.Errorf("happiness = %v, want 74", got)
	}
	if got := c.Stats.Get("energy"); math.Abs(got-78) > 1e-9 {
		t.Errorf("energy = %v, want 78", got)
	}
}

func TestHeartbeatSettlesIdleCreature(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(48 * time.Hour)
	r.Register(c)

	h := NewHeartbeat(time.Minute, r, zap.NewNop())
	h.FireNow(testNow)

	if len(c.Personality.Shifts) == 0 {
		t.Fatal("idle creature got no settling shifts")
	}
	for _, s := range c.Personality.Shifts {
		if s.Trigger != evolution.TriggerTimePassage {
			t.Errorf("unexpected shift trigger %q", s.Trigger)
		}
	}

	// A second beat right away must not stack more settling shifts.
	n := len(c.Personality.Shifts)
	h.FireNow(testNow.Add(time.Minute))
	if len(c.Personality.Shifts) != n {
		t.Errorf("settling repeated within the idle window: %d -> %d shifts", n, len(c.Personality.Shifts))
	}
}

func TestHeartbeatLeavesActiveCreatureAlone(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(time.Hour)
	r.Register(c)

	h := NewHeartbeat(time.Minute, r, zap.NewNop())
	h.FireNow(testNow)

	if len(c.Personality.Shifts) != 0 {
		t.Errorf("recently active creature got %d settling shifts", len(c.Personality.Shifts))
	}
}

func TestHeartbeatPrunesExpiredShifts(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(time.Hour)
	c.Personality.Shifts = []evolution.Shift{
		{TraitName: "trust", Magnitude: 0.01, Timestamp: testNow.Add(-300 * time.Hour), DecayHours: 168},
	}
	r.Register(c)

	h := NewHeartbeat(time.Minute, r, zap.NewNop())
	h.FireNow(testNow)

	if len(c.Personality.Shifts) != 0 {
		t.Errorf("expired shifts not pruned, %d remain", len(c.Personality.Shifts))
	}
}

func TestHeartbeatConcurrentWithInteractions(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(48 * time.Hour)
	r.Register(c)

	h := NewHeartbeat(time.Minute, r, zap.NewNop())
	rng := decision.NewRand(1)
	tpl := creature.BaseTemplates["base_mammal"]
	m := creature.NewMind(decision.NewModel(rng), tpl, creature.MoodPolicy{}, 0.4, rng, zap.NewNop())

	in := creature.Interaction{
		Emotion: decision.EmotionResult{PrimaryEmotion: "happy", ImpactScore: 0.5},
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			h.FireNow(testNow.Add(time.Duration(i) * time.Minute))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			m.Process(c, in, testNow.Add(time.Duration(i)*time.Minute))
		}
	}()
	wg.Wait()

	c.RLock()
	defer c.RUnlock()
	for _, name := range []string{"happiness", "energy", "hunger"} {
		if v := c.Stats.Get(name); v < 0 || v > 100 {
			t.Errorf("%s = %v, want within [0,100]", name, v)
		}
	}
	base := c.Personality.Base.Clamp()
	if base != c.Personality.Base {
		t.Error("personality traits escaped [0,1]")
	}
}

func TestHeartbeatOnTickInterval(t *testing.T) {
	r := creature.NewRegistry(zap.NewNop())
	c := newIdleCreature(10 * time.Hour)
	r.Register(c)

	h := NewHeartbeat(time.Hour, r, zap.NewNop())

	// The first tick only arms the interval; the second is too soon.
	h.OnTick(testNow)
	h.OnTick(testNow.Add(time.Minute))
	if got := c.Stats.Get("happiness"); got != 75 {
		t.Errorf("beat fired before the interval elapsed, happiness = %v", got)
	}

	h.OnTick(testNow.Add(2 * time.Hour))
	if got := c.Stats.Get("happiness"); got == 75 {
		t.Error("beat did not fire after the interval elapsed")
	}
}
