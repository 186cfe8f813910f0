// Package evolution drives long-term personality change. Interactions
// produce shifts whose influence decays linearly over a horizon;
// applying the active shifts nudges stored traits by small amounts.
package evolution

import "time"

// Trigger classifies the kind of experience that caused a shift.
type Trigger string

const (
	TriggerPositiveInteraction Trigger = "positive_interaction"
	TriggerNegativeInteraction Trigger = "negative_interaction"
	TriggerRepeatedBehavior    Trigger = "repeated_behavior"
	TriggerEmotionalPeak       Trigger = "emotional_peak"
	TriggerLearningExperience  Trigger = "learning_experience"
	TriggerSocialBonding       Trigger = "social_bonding"
	TriggerStressEvent         Trigger = "stress_event"
	TriggerAchievement         Trigger = "achievement"
	TriggerFailure             Trigger = "failure"
	TriggerTimePassage         Trigger = "time_passage"
)

// Event describes one interaction or experience for trigger
// classification and rule evaluation.
type Event struct {
	Type             string            `json:"type,omitempty"`
	EmotionalImpact  float64           `json:"emotional_impact"`
	LearningOccurred bool              `json:"learning_occurred,omitempty"`
	BondingOccurred  bool              `json:"bonding_occurred,omitempty"`
	StressLevel      float64           `json:"stress_level,omitempty"`
	Success          bool              `json:"success,omitempty"`
	Failed           bool              `json:"failed,omitempty"`
	Context          map[string]string `json:"context,omitempty"`
}

// DetermineTrigger classifies an event. Explicit event types win over
// the impact-based fallbacks.
func DetermineTrigger(ev Event) Trigger {
	impact := ev.EmotionalImpact
	switch {
	case ev.Type == "achievement" || ev.Success:
		return TriggerAchievement
	case ev.Type == "failure" || ev.Failed:
		return TriggerFailure
	case ev.Type == "learning" || ev.LearningOccurred:
		return TriggerLearningExperience
	case ev.Type == "social_bonding" || ev.BondingOccurred:
		return TriggerSocialBonding
	case ev.Type == "stress" || ev.StressLevel > 0.7:
		return TriggerStressEvent
	case impact > 0.8 || impact < -0.8:
		return TriggerEmotionalPeak
	case impact > 0.3:
		return TriggerPositiveInteraction
	case impact < -0.3:
		return TriggerNegativeInteraction
	default:
		return TriggerRepeatedBehavior
	}
}

// DefaultDecayHours is the influence horizon for most shifts, one week.
const DefaultDecayHours = 168.0

// Shift is one pending trait change. Its influence starts at Magnitude
// and decays linearly to zero over DecayHours.
type Shift struct {
	TraitName  string    `json:"trait_name"`
	Direction  float64   `json:"shift_direction"`
	Magnitude  float64   `json:"shift_magnitude"`
	Trigger    Trigger   `json:"trigger"`
	Timestamp  time.Time `json:"timestamp"`
	DecayHours float64   `json:"influence_decay_hours"`
	Impact     float64   `json:"emotional_impact"`
}

// Expired reports whether the shift's influence horizon has passed.
func (s *Shift) Expired(now time.Time) bool {
	return now.After(s.Timestamp.Add(time.Duration(s.DecayHours * float64(time.Hour))))
}

// Influence returns the current decayed strength. At the horizon the
// value is exactly zero.
func (s *Shift) Influence(now time.Time) float64 {
	if s.Expired(now) {
		return 0
	}
	hours := now.Sub(s.Timestamp).Hours()
	decay := 1.0 - hours/s.DecayHours
	if decay < 0 {
		return 0
	}
	return s.Magnitude * decay
}
