package creature

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/evolution"
	"github.com/nidhogg/creature-mind/internal/trait"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestStatsClampAndDefaults(t *testing.T) {
	s := NewStats(BaseTemplates["base_mammal"].StatConfigs)

	if got := s.Get("happiness"); got != 75 {
		t.Fatalf("default happiness = %v, want 75", got)
	}
	s.Set("happiness", 250)
	if got := s.Get("happiness"); got != 100 {
		t.Errorf("over-max happiness = %v, want 100", got)
	}
	s.Modify("happiness", -500)
	if got := s.Get("happiness"); got != 0 {
		t.Errorf("under-min happiness = %v, want 0", got)
	}
	if got := s.Get("charisma"); got != defaultStatConfig.DefaultStart {
		t.Errorf("unknown stat = %v, want default %v", got, defaultStatConfig.DefaultStart)
	}
}

func TestStatsDecay(t *testing.T) {
	s := NewStats(BaseTemplates["base_mammal"].StatConfigs)
	s.Decay(10)

	if got := s.Get("happiness"); got != 74 {
		t.Errorf("happiness after 10h = %v, want 74", got)
	}
	if got := s.Get("energy"); got != 78 {
		t.Errorf("energy after 10h = %v, want 78", got)
	}
	if got := s.Get("hunger"); got != 37 {
		t.Errorf("hunger after 10h = %v, want 37", got)
	}

	s.Decay(-5)
	if got := s.Get("happiness"); got != 74 {
		t.Errorf("negative hours changed happiness to %v", got)
	}
}

func TestMood(t *testing.T) {
	cases := []struct {
		happiness, energy float64
		want              string
	}{
		{85, 80, "joyful"},
		{65, 55, "content"},
		{20, 90, "unhappy"},
		{50, 20, "tired"},
		{50, 40, "neutral"},
	}
	tpl := BaseTemplates["base_mammal"]
	for _, tc := range cases {
		c := New("Mop", tpl, "", nil, testNow)
		c.Stats.Set("happiness", tc.happiness)
		c.Stats.Set("energy", tc.energy)
		if got := c.Mood(); got != tc.want {
			t.Errorf("mood(h=%v, e=%v) = %q, want %q", tc.happiness, tc.energy, got, tc.want)
		}
	}
}

func TestNewPersonalityFallbacks(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]

	c := New("Leo", tpl, "leonardo", nil, testNow)
	if c.Personality.Base == trait.Neutral() {
		t.Error("archetype creature got the neutral vector")
	}
	if c.Personality.Base != c.Personality.Initial {
		t.Error("initial traits differ from base at creation")
	}

	c = New("Pip", tpl, "", []string{"playful", "curious"}, testNow)
	if c.Personality.Base == trait.Neutral() {
		t.Error("simple-trait creature got the neutral vector")
	}

	c = New("Bob", tpl, "", nil, testNow)
	if c.Personality.Base != trait.Neutral() {
		t.Error("creature without archetype or traits should be neutral")
	}
}

func TestMoodPolicy(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	cases := []struct {
		happiness, energy float64
		want              bool
	}{
		{50, 50, true},
		{15, 15, false},
		{5, 90, false},
		{90, 3, false},
		{15, 50, true},
	}
	for _, tc := range cases {
		s := NewStats(tpl.StatConfigs)
		s.Set("happiness", tc.happiness)
		s.Set("energy", tc.energy)
		if got := (MoodPolicy{}).CanTranslate(s); got != tc.want {
			t.Errorf("CanTranslate(h=%v, e=%v) = %v, want %v", tc.happiness, tc.energy, got, tc.want)
		}
	}
}

func TestThresholdPolicy(t *testing.T) {
	p, err := NewThresholdPolicy(map[string]string{"happiness": "> 40", "energy": ">= 30"})
	if err != nil {
		t.Fatalf("NewThresholdPolicy: %v", err)
	}

	s := NewStats(BaseTemplates["base_mammal"].StatConfigs)
	s.Set("happiness", 50)
	s.Set("energy", 30)
	if !p.CanTranslate(s) {
		t.Error("conditions met but translation refused")
	}
	s.Set("happiness", 40)
	if p.CanTranslate(s) {
		t.Error("strict > condition failed but translation allowed")
	}

	if _, err := NewThresholdPolicy(map[string]string{"happiness": "over 40"}); err == nil {
		t.Error("unknown operator accepted")
	}
	if _, err := NewThresholdPolicy(map[string]string{"happiness": "> lots"}); err == nil {
		t.Error("non-numeric value accepted")
	}
	if _, err := NewThresholdPolicy(map[string]string{"happiness": ">40"}); err == nil {
		t.Error("missing separator accepted")
	}
}

func TestPolicyFor(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]

	p, err := PolicyFor("threshold", tpl)
	if err != nil {
		t.Fatalf("PolicyFor(threshold): %v", err)
	}
	if _, ok := p.(*ThresholdPolicy); !ok {
		t.Errorf("PolicyFor(threshold) = %T, want *ThresholdPolicy", p)
	}

	p, err = PolicyFor("mood", tpl)
	if err != nil {
		t.Fatalf("PolicyFor(mood): %v", err)
	}
	if _, ok := p.(MoodPolicy); !ok {
		t.Errorf("PolicyFor(mood) = %T, want MoodPolicy", p)
	}
}

func TestSoundFor(t *testing.T) {
	tpl := BaseTemplates["base_reptile"]
	rng := rand.New(rand.NewSource(7))

	if got := tpl.SoundFor("angry", 10, rng); got != "*warning hiss*" {
		t.Errorf("low-energy angry sound = %q", got)
	}
	if got := tpl.SoundFor("angry", 90, rng); got != "*aggressive rattle*" {
		t.Errorf("high-energy angry sound = %q", got)
	}
	if got := tpl.SoundFor("perplexed", 50, rng); got != "*quiet sound*" {
		t.Errorf("unknown emotion sound = %q", got)
	}
}

func TestPruneShifts(t *testing.T) {
	c := New("Mop", BaseTemplates["base_mammal"], "", nil, testNow)
	c.Personality.Shifts = []evolution.Shift{
		{TraitName: "trust", Magnitude: 0.01, Timestamp: testNow.Add(-200 * time.Hour), DecayHours: 168},
		{TraitName: "curiosity", Magnitude: 0.01, Timestamp: testNow.Add(-time.Hour), DecayHours: 168},
	}
	c.PruneShifts(testNow)
	if len(c.Personality.Shifts) != 1 {
		t.Fatalf("active shifts = %d, want 1", len(c.Personality.Shifts))
	}
	if c.Personality.Shifts[0].TraitName != "curiosity" {
		t.Errorf("kept shift %q, want curiosity", c.Personality.Shifts[0].TraitName)
	}
}

func newTestMind(tpl *Template, seed int64) *Mind {
	rng := rand.New(rand.NewSource(seed))
	return NewMind(decision.NewModel(rng), tpl, MoodPolicy{}, 0.001, rng, zap.NewNop())
}

func TestMindProcessInteraction(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	c := New("Rex", tpl, "leonardo", nil, testNow)
	m := newTestMind(tpl, 1)

	in := Interaction{
		Perception: decision.PerceptionResult{Intent: "play", Tone: "friendly"},
		Emotion:    decision.EmotionResult{PrimaryEmotion: "happy", ImpactScore: 0.5},
	}
	res := m.Process(c, in, testNow)

	if _, ok := res.Utilities[res.Style]; !ok {
		t.Errorf("selected style %q missing from utilities", res.Style)
	}
	if res.Trigger != evolution.TriggerPositiveInteraction {
		t.Errorf("trigger = %q, want positive_interaction", res.Trigger)
	}
	if len(c.Personality.Shifts) == 0 {
		t.Error("interaction recorded no personality shifts")
	}
	if c.Personality.EmotionalState == nil {
		t.Fatal("emotional state not set")
	}
	if got := c.Personality.EmotionalState.Intensity; got != 0.5 {
		t.Errorf("emotional intensity = %v, want 0.5", got)
	}
	if got := c.Personality.EmotionalState.Valence; got != 0.5 {
		t.Errorf("emotional valence = %v, want 0.5", got)
	}

	if got := c.Stats.Get("happiness"); math.Abs(got-76) > 1e-9 {
		t.Errorf("happiness = %v, want 76", got)
	}
	if got := c.Stats.Get("energy"); math.Abs(got-79) > 1e-9 {
		t.Errorf("energy = %v, want 79", got)
	}
	if !c.LastInteraction.Equal(testNow) {
		t.Errorf("last interaction = %v, want %v", c.LastInteraction, testNow)
	}
	if !res.CanTranslate {
		t.Error("healthy creature refused translation")
	}
	if res.Mood != "content" {
		t.Errorf("mood = %q, want content", res.Mood)
	}
}

func TestMindProcessAppliesIdleDecay(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	c := New("Rex", tpl, "", nil, testNow)
	m := newTestMind(tpl, 2)

	later := testNow.Add(10 * time.Hour)
	m.Process(c, Interaction{}, later)

	// 10h of decay, then the interaction's flat energy cost.
	if got := c.Stats.Get("energy"); math.Abs(got-77) > 1e-9 {
		t.Errorf("energy = %v, want 77", got)
	}
	if got := c.Stats.Get("hunger"); math.Abs(got-37) > 1e-9 {
		t.Errorf("hunger = %v, want 37", got)
	}
	if !c.LastStatsUpdate.Equal(later) {
		t.Errorf("stats update time = %v, want %v", c.LastStatsUpdate, later)
	}
}

func TestProcessActivityFeed(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	c := New("Rex", tpl, "", nil, testNow)
	m := newTestMind(tpl, 3)

	res, err := m.ProcessActivity(c, "feed", testNow)
	if err != nil {
		t.Fatalf("ProcessActivity(feed): %v", err)
	}

	if res.Trigger != evolution.TriggerAchievement {
		t.Errorf("feed trigger = %q, want achievement", res.Trigger)
	}
	if got := c.Stats.Get("hunger"); math.Abs(got-10) > 1e-9 {
		t.Errorf("hunger = %v, want 10", got)
	}
	// 5 from the activity plus 2x the derived emotional impact.
	if got := c.Stats.Get("happiness"); math.Abs(got-80.2) > 1e-9 {
		t.Errorf("happiness = %v, want 80.2", got)
	}
	if got := res.StatsDelta["hunger"]; math.Abs(got+30) > 1e-9 {
		t.Errorf("hunger delta = %v, want -30", got)
	}
	if got := res.StatsDelta["happiness"]; math.Abs(got-5.2) > 1e-9 {
		t.Errorf("happiness delta = %v, want 5.2", got)
	}
	if c.Personality.EmotionalState == nil || c.Personality.EmotionalState.PrimaryEmotion != "happy" {
		t.Error("feed with positive change should leave a happy state")
	}
}

func TestProcessActivityErrors(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	c := New("Rex", tpl, "", nil, testNow)
	m := newTestMind(tpl, 4)

	if _, err := m.ProcessActivity(c, "dance", testNow); err == nil {
		t.Error("unknown activity accepted")
	}

	c.Stats.Set("energy", 10)
	if _, err := m.ProcessActivity(c, "play", testNow); err == nil {
		t.Error("play allowed below required energy")
	}
}

func TestProcessActivityLearning(t *testing.T) {
	tpl := BaseTemplates["base_mammal"]
	c := New("Rex", tpl, "", nil, testNow)
	m := newTestMind(tpl, 5)

	res, err := m.ProcessActivity(c, "train", testNow)
	if err != nil {
		t.Fatalf("ProcessActivity(train): %v", err)
	}
	if res.Trigger != evolution.TriggerLearningExperience {
		t.Errorf("train trigger = %q, want learning_experience", res.Trigger)
	}
	if len(c.Personality.Learnings) == 0 {
		t.Error("training produced no learnings")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	tpl := BaseTemplates["base_mythical"]
	c := New("Wisp", tpl, "", nil, testNow)

	r.Register(c)
	got, ok := r.Get(c.ID)
	if !ok || got.Name != "Wisp" {
		t.Fatalf("Get after Register = %v, %v", got, ok)
	}
	if len(r.List()) != 1 {
		t.Errorf("List length = %d, want 1", len(r.List()))
	}
	if !r.Remove(c.ID) {
		t.Error("Remove returned false for a registered creature")
	}
	if _, ok := r.Get(c.ID); ok {
		t.Error("creature still present after Remove")
	}
	if r.Remove(c.ID) {
		t.Error("Remove returned true for a missing creature")
	}
}
