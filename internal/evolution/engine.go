package evolution

import (
	"time"

	"github.com/nidhogg/creature-mind/internal/emotion"
	"github.com/nidhogg/creature-mind/internal/trait"
)

const (
	// baseEvolutionRate converts shift influence into trait delta.
	baseEvolutionRate = 0.001
	// maxChangePerEvent caps the magnitude any single event can carry.
	maxChangePerEvent = 0.02
	// correlationFraction is the share of a change propagated to
	// correlated traits.
	correlationFraction = 0.3
	// maxEmotionMultiplier bounds emotional amplification of change.
	maxEmotionMultiplier = 3.0
)

// InteractionContext summarizes the ongoing relationship for the
// slow prosocial and defensive drifts.
type InteractionContext struct {
	RelationshipQuality  float64 `json:"relationship_quality"`
	InteractionFrequency float64 `json:"interaction_frequency"`
}

// Engine applies personality shifts and ambient drifts to traits.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// CreateShifts evaluates the rules for a trigger against an event and
// returns the resulting shifts. Zero-impact events produce shifts of
// zero magnitude, which are inert but still recorded.
func (e *Engine) CreateShifts(trigger Trigger, ev Event, now time.Time) []Shift {
	rules := evolutionRules[trigger]
	shifts := make([]Shift, 0, len(rules))

	for _, rule := range rules {
		if !rule.Conditions.met(ev) {
			continue
		}

		magnitude := abs(ev.EmotionalImpact) * rule.BaseMagnitude
		if magnitude > maxChangePerEvent {
			magnitude = maxChangePerEvent
		}

		direction := 1.0
		if ev.EmotionalImpact < 0 {
			direction = -1.0
		}
		if rule.Invert {
			direction *= -1.0
		}

		decay := rule.DecayHours
		if decay == 0 {
			decay = DefaultDecayHours
		}

		shifts = append(shifts, Shift{
			TraitName:  rule.Trait,
			Direction:  direction,
			Magnitude:  magnitude,
			Trigger:    trigger,
			Timestamp:  now,
			DecayHours: decay,
			Impact:     ev.EmotionalImpact,
		})
	}
	return shifts
}

// Evolve applies the active shifts, sustained emotional drift and
// relationship drift to the current traits and returns the evolved
// vector. With no active inputs the vector is returned unchanged.
func (e *Engine) Evolve(current trait.Vector, shifts []Shift, state *emotion.State, ictx *InteractionContext, now time.Time) trait.Vector {
	out := current

	for i := range shifts {
		s := &shifts[i]
		if s.Expired(now) {
			continue
		}
		idx, ok := trait.Index(s.TraitName)
		if !ok {
			continue
		}

		change := s.Direction * s.Influence(now) * baseEvolutionRate
		if state != nil {
			change *= emotionMultiplier(s.Trigger, state.Intensity)
		}

		out[idx] += change
		applyCorrelations(&out, s.TraitName, change*correlationFraction)
	}

	if state != nil {
		applySustainedEmotion(&out, state)
	}
	if ictx != nil {
		applyRelationship(&out, ictx)
	}

	return out.Clamp()
}

// emotionMultiplier amplifies change under strong emotion. The result
// never dampens a change and never exceeds maxEmotionMultiplier.
func emotionMultiplier(trigger Trigger, intensity float64) float64 {
	mult := intensity * 2.0
	if mult < 1.0 {
		mult = 1.0
	}
	switch trigger {
	case TriggerEmotionalPeak, TriggerStressEvent, TriggerSocialBonding, TriggerAchievement, TriggerFailure:
		mult *= 1.5
	}
	if mult > maxEmotionMultiplier {
		mult = maxEmotionMultiplier
	}
	return mult
}

func applyCorrelations(v *trait.Vector, traitName string, change float64) {
	for related, corr := range traitCorrelations[traitName] {
		if idx, ok := trait.Index(related); ok {
			v[idx] += change * corr
		}
	}
}

func applySustainedEmotion(v *trait.Vector, state *emotion.State) {
	durationScale := state.DurationHours / 24.0
	if durationScale > 1.0 {
		durationScale = 1.0
	}
	for name, influence := range sustainedInfluences[state.PrimaryEmotion] {
		if idx, ok := trait.Index(name); ok {
			v[idx] += influence * state.Intensity * durationScale
		}
	}
}

func applyRelationship(v *trait.Vector, ictx *InteractionContext) {
	switch {
	case ictx.RelationshipQuality > 0.7:
		nudge := 0.0005 * ictx.InteractionFrequency
		for _, name := range prosocialTraits {
			if idx, ok := trait.Index(name); ok {
				v[idx] += nudge
			}
		}
	case ictx.RelationshipQuality < 0.3:
		nudge := 0.0003 * ictx.InteractionFrequency
		for _, name := range defensiveTraits {
			if idx, ok := trait.Index(name); ok {
				v[idx] += nudge
			}
		}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
