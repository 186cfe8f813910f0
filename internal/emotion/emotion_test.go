package emotion

import (
	"math"
	"testing"

	"github.com/nidhogg/creature-mind/internal/trait"
)

func TestApplyNilOrWeakState(t *testing.T) {
	base := trait.Neutral()

	if got := Apply(base, nil); got != base {
		t.Error("nil state modified the vector")
	}
	weak := &State{PrimaryEmotion: "happy", Intensity: 0.05}
	if got := Apply(base, weak); got != base {
		t.Error("below-threshold emotion modified the vector")
	}
}

func TestApplyHappyInfluence(t *testing.T) {
	base := trait.Neutral()
	got := Apply(base, &State{PrimaryEmotion: "happy", Intensity: 1.0})

	// enthusiasm weight 0.7 at full intensity scaled by 0.3.
	if want := 0.5 + 0.7*0.3; math.Abs(got.Get("enthusiasm")-want) > 1e-12 {
		t.Errorf("enthusiasm = %v, want %v", got.Get("enthusiasm"), want)
	}
	if want := 0.5 - 0.3*0.3; math.Abs(got.Get("neuroticism")-want) > 1e-12 {
		t.Errorf("neuroticism = %v, want %v", got.Get("neuroticism"), want)
	}
	if base.Get("enthusiasm") != 0.5 {
		t.Error("base vector was mutated")
	}
}

func TestApplyValenceScaling(t *testing.T) {
	base := trait.Neutral()
	neutral := Apply(base, &State{PrimaryEmotion: "happy", Intensity: 0.5})
	positive := Apply(base, &State{PrimaryEmotion: "happy", Intensity: 0.5, Valence: 1.0})

	dNeutral := neutral.Get("enthusiasm") - 0.5
	dPositive := positive.Get("enthusiasm") - 0.5
	if math.Abs(dPositive-dNeutral*1.5) > 1e-12 {
		t.Errorf("positive valence delta = %v, want 1.5x of %v", dPositive, dNeutral)
	}
}

func TestApplyDurationCap(t *testing.T) {
	base := trait.Neutral()
	day := Apply(base, &State{PrimaryEmotion: "calm", Intensity: 0.5, DurationHours: 24})
	week := Apply(base, &State{PrimaryEmotion: "calm", Intensity: 0.5, DurationHours: 168})

	dDay := day.Get("patience") - 0.5
	base1 := 0.5 * 0.5 * 0.3 // weight * intensity * scale
	if math.Abs(dDay-base1*1.5) > 1e-12 {
		t.Errorf("24h delta = %v, want %v", dDay, base1*1.5)
	}
	dWeek := week.Get("patience") - 0.5
	if math.Abs(dWeek-base1*2.0) > 1e-12 {
		t.Errorf("sustained delta = %v, want capped at %v", dWeek, base1*2.0)
	}
}

func TestApplySecondaryHalfStrength(t *testing.T) {
	base := trait.Neutral()
	st := &State{
		PrimaryEmotion:    "happy",
		SecondaryEmotions: []string{"curious"},
		Intensity:         0.8,
	}
	got := Apply(base, st)

	// curiosity is only touched by the secondary emotion.
	want := 0.5 + 0.7*0.8*0.3*0.5
	if math.Abs(got.Get("curiosity")-want) > 1e-12 {
		t.Errorf("curiosity = %v, want %v", got.Get("curiosity"), want)
	}
}

func TestApplyClamps(t *testing.T) {
	base := trait.Neutral().With("enthusiasm", 0.95).With("optimism", 0.02)
	happy := Apply(base, &State{PrimaryEmotion: "happy", Intensity: 1.0, Valence: 1.0, DurationHours: 48})
	if v := happy.Get("enthusiasm"); v != 1.0 {
		t.Errorf("enthusiasm = %v, want clamped to 1.0", v)
	}
	sad := Apply(base, &State{PrimaryEmotion: "sad", Intensity: 1.0, DurationHours: 48})
	if v := sad.Get("optimism"); v != 0.0 {
		t.Errorf("optimism = %v, want clamped to 0.0", v)
	}
}

func TestSummarize(t *testing.T) {
	base := trait.Neutral()
	st := &State{PrimaryEmotion: "happy", Intensity: 0.9}
	colored := Apply(base, st)

	sum := Summarize(base, colored, st)
	if !sum.PersonalityShift {
		t.Fatal("expected a temporary personality shift")
	}
	if _, ok := sum.TraitChanges["enthusiasm"]; !ok {
		t.Errorf("missing enthusiasm in changes: %v", sum.TraitChanges)
	}
	if sum.InfluencePattern != "strong_happy_influence" {
		t.Errorf("pattern = %q, want strong_happy_influence", sum.InfluencePattern)
	}
	if sum.Dominance <= 0 || sum.Dominance > 1 {
		t.Errorf("dominance = %v, want within (0,1]", sum.Dominance)
	}
}

func TestSummarizeStable(t *testing.T) {
	base := trait.Neutral()
	sum := Summarize(base, base, nil)
	if sum.PersonalityShift {
		t.Error("unexpected shift for identical vectors")
	}
	if sum.InfluencePattern != "stable" {
		t.Errorf("pattern = %q, want stable", sum.InfluencePattern)
	}
	if sum.PrimaryEmotion != "neutral" {
		t.Errorf("emotion = %q, want neutral", sum.PrimaryEmotion)
	}
}
