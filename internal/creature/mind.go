package creature

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/adaptation"
	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/emotion"
	"github.com/nidhogg/creature-mind/internal/evolution"
	"github.com/nidhogg/creature-mind/internal/trait"
)

// learningCleanupThreshold triggers a memory cleanup pass once a
// creature accumulates this many learnings.
const learningCleanupThreshold = 100

// Interaction is one user interaction as seen by the mind, already
// run through upstream perception, emotion and memory analysis.
type Interaction struct {
	Perception decision.PerceptionResult
	Emotion    decision.EmotionResult
	Memory     decision.MemoryResult
	Context    map[string]string

	// Event, when set, describes the experience for evolution rule
	// evaluation. Left nil it is derived from the emotional impact.
	Event *evolution.Event

	// Trigger, when set, overrides trigger classification. Activities
	// carry a fixed trigger instead of deriving one from the event.
	Trigger evolution.Trigger
}

// Result is the mind's full response to one interaction.
type Result struct {
	Style        decision.Style             `json:"action_style"`
	Guidance     decision.StyleInfo         `json:"guidance"`
	Utilities    map[decision.Style]float64 `json:"utilities"`
	Trigger      evolution.Trigger          `json:"evolution_trigger"`
	Sound        string                     `json:"sound"`
	CanTranslate bool                       `json:"can_translate"`
	Mood         string                     `json:"mood"`
	StatsDelta   map[string]float64         `json:"stats_delta"`
}

// Mind wires the decision model, evolution, emotional coloring and
// learning into one processing pipeline for a creature.
type Mind struct {
	model  *decision.Model
	evo    *evolution.Engine
	adapt  *adaptation.Engine
	policy TranslationPolicy
	tpl    *Template

	temperature float64
	rng         *rand.Rand
	log         *zap.Logger
}

// NewMind builds a mind for one creature template. Temperature at or
// below zero uses the model's own.
func NewMind(model *decision.Model, tpl *Template, policy TranslationPolicy, temperature float64, rng *rand.Rand, log *zap.Logger) *Mind {
	return &Mind{
		model:       model,
		evo:         evolution.NewEngine(),
		adapt:       adaptation.NewEngine(),
		policy:      policy,
		tpl:         tpl,
		temperature: temperature,
		rng:         rng,
		log:         log,
	}
}

// Process runs one interaction through the full pipeline: decay and
// evolve the stored personality, color it with the current emotional
// state, decide a style, then record the shifts, emotional state and
// learnings the interaction produced.
func (m *Mind) Process(c *Creature, in Interaction, now time.Time) Result {
	c.Lock()
	defer c.Unlock()
	return m.process(c, in, now)
}

// process assumes the caller holds the creature's write lock.
func (m *Mind) process(c *Creature, in Interaction, now time.Time) Result {
	c.ApplyInactivityDecay(now)
	c.PruneShifts(now)

	impact := in.Emotion.ImpactScore
	ictx := &evolution.InteractionContext{
		RelationshipQuality:  relationshipQuality(in.Memory.Relationship),
		InteractionFrequency: interactionFrequency(c.HoursSinceInteraction(now)),
	}

	// Evolution writes back to the stored personality; the emotional
	// coloring afterwards is transient and never persisted.
	c.Personality.Base = m.evo.Evolve(c.Personality.Base, c.Personality.Shifts, c.Personality.EmotionalState, ictx, now)
	expressed := emotion.Apply(c.Personality.Base, c.Personality.EmotionalState)

	snapshot := decision.CreatureSnapshot{
		Stats:                 c.Stats.Snapshot(),
		Mood:                  c.Mood(),
		HoursSinceInteraction: c.HoursSinceInteraction(now),
		PersonalityTraits:     c.Personality.SimpleTraits,
	}
	cv, skipped := decision.EncodeContext(in.Perception, in.Emotion, in.Memory, snapshot)
	if skipped > 0 {
		m.log.Debug("context encoding defaulted fields",
			zap.String("creature", c.Name),
			zap.Int("skipped", skipped))
	}
	utilities := m.model.Utilities(expressed, cv)
	style := m.model.Select(utilities, m.temperature, m.rng)

	// Record the interaction's lasting effects.
	var ev evolution.Event
	if in.Event != nil {
		ev = *in.Event
	} else {
		ev = evolution.Event{
			EmotionalImpact: impact,
			Context:         in.Context,
		}
	}
	trigger := in.Trigger
	if trigger == "" {
		trigger = evolution.DetermineTrigger(ev)
	}
	c.Personality.Shifts = append(c.Personality.Shifts, m.evo.CreateShifts(trigger, ev, now)...)

	if in.Emotion.PrimaryEmotion != "" {
		c.Personality.EmotionalState = &emotion.State{
			PrimaryEmotion:    in.Emotion.PrimaryEmotion,
			SecondaryEmotions: in.Emotion.SecondaryEmotions,
			Intensity:         abs(impact),
			Valence:           impact,
			DurationHours:     1,
		}
	}

	delta := m.applyStatEffects(c, impact)
	m.learn(c, in, style, delta["happiness"], now)

	c.LastInteraction = now

	m.log.Debug("processed interaction",
		zap.String("creature", c.Name),
		zap.String("style", string(style)),
		zap.String("trigger", string(trigger)),
		zap.Float64("impact", impact))

	return Result{
		Style:        style,
		Guidance:     m.model.Guidance(style),
		Utilities:    utilities,
		Trigger:      trigger,
		Sound:        m.tpl.SoundFor(in.Emotion.PrimaryEmotion, c.Stats.Get("energy"), m.rng),
		CanTranslate: m.policy.CanTranslate(c.Stats),
		Mood:         c.Mood(),
		StatsDelta:   delta,
	}
}

// ProcessActivity applies a named activity's stat effects and then
// runs the resulting experience through the pipeline.
func (m *Mind) ProcessActivity(c *Creature, name string, now time.Time) (Result, error) {
	activity, ok := m.tpl.Activity(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown activity %q for template %s", name, m.tpl.ID)
	}

	c.Lock()
	defer c.Unlock()

	for stat, required := range activity.RequiredStats {
		if c.Stats.Get(stat) < required {
			return Result{}, fmt.Errorf("cannot perform %s: insufficient %s", name, stat)
		}
	}

	delta := map[string]float64{}
	for stat, effect := range activity.StatEffects {
		c.Stats.Modify(stat, effect)
		delta[stat] += effect
	}
	if activity.EnergyCost > 0 {
		c.Stats.Modify("energy", -activity.EnergyCost)
		delta["energy"] -= activity.EnergyCost
	}

	happinessChange := delta["happiness"]
	impact := happinessChange / 50.0
	info := activityTriggers[name]
	trigger := info.trigger
	if name == "feed" && happinessChange <= 0 {
		trigger = evolution.TriggerFailure
	}

	in := Interaction{
		Perception: decision.PerceptionResult{
			Intent:        name,
			IntentDetails: activity.Description,
		},
		Emotion: decision.EmotionResult{
			PrimaryEmotion: emotionForChange(happinessChange),
			ImpactScore:    impact,
		},
		Context: map[string]string{"activity": name},
		Trigger: trigger,
		Event: &evolution.Event{
			EmotionalImpact:  impact,
			LearningOccurred: info.learning,
			BondingOccurred:  info.bonding && happinessChange > 0,
			StressLevel:      max(0, -happinessChange/50.0),
			Success:          happinessChange > 0,
			Failed:           happinessChange < -10,
			Context:          map[string]string{"activity": name},
		},
	}

	result := m.process(c, in, now)

	// Merge the activity's own stat effects with the interaction's.
	for stat, d := range result.StatsDelta {
		delta[stat] += d
	}
	result.StatsDelta = delta
	return result, nil
}

type activityInfo struct {
	trigger  evolution.Trigger
	learning bool
	bonding  bool
}

var activityTriggers = map[string]activityInfo{
	"feed":  {trigger: evolution.TriggerAchievement},
	"play":  {trigger: evolution.TriggerPositiveInteraction, bonding: true},
	"pet":   {trigger: evolution.TriggerSocialBonding, bonding: true},
	"walk":  {trigger: evolution.TriggerLearningExperience, learning: true},
	"train": {trigger: evolution.TriggerLearningExperience, learning: true},
	"rest":  {trigger: evolution.TriggerRepeatedBehavior},
}

// Tendencies reports which styles this creature's stored personality
// favors, independent of any situation.
func (m *Mind) Tendencies(c *Creature) decision.Tendencies {
	c.RLock()
	defer c.RUnlock()
	return m.model.AnalyzeTendencies(c.Personality.Base)
}

// Development analyzes how the personality has changed since creation.
func (m *Mind) Development(c *Creature, now time.Time) evolution.Development {
	c.RLock()
	defer c.RUnlock()
	return m.evo.AnalyzeDevelopment(c.Personality.Initial, c.Personality.Base, c.Personality.Shifts, now)
}

// ExpressedTraits returns the personality as currently colored by the
// emotional state.
func (m *Mind) ExpressedTraits(c *Creature) trait.Vector {
	c.RLock()
	defer c.RUnlock()
	return emotion.Apply(c.Personality.Base, c.Personality.EmotionalState)
}

// LearningSummary reports what the creature has learned.
func (m *Mind) LearningSummary(c *Creature, now time.Time) adaptation.Summary {
	c.RLock()
	defer c.RUnlock()
	return m.adapt.Summarize(c.Personality.Learnings, now)
}

func (m *Mind) applyStatEffects(c *Creature, impact float64) map[string]float64 {
	delta := map[string]float64{}
	if impact > 0 {
		c.Stats.Modify("happiness", impact*2)
		delta["happiness"] = impact * 2
	}
	if _, ok := c.Stats.Configs["energy"]; ok {
		c.Stats.Modify("energy", -1)
		delta["energy"] = -1
	}
	return delta
}

func (m *Mind) learn(c *Creature, in Interaction, style decision.Style, happinessChange float64, now time.Time) {
	obs := adaptation.Observation{
		UserIntent:     in.Perception.Intent,
		UserTone:       in.Perception.Tone,
		PrimaryEmotion: in.Emotion.PrimaryEmotion,
		Context:        in.Context,
	}
	out := adaptation.Outcome{
		HappinessChange: happinessChange,
		ActionStyle:     string(style),
		EmotionalState:  in.Emotion.PrimaryEmotion,
	}

	created, _ := m.adapt.Learn(obs, out, c.Personality.Learnings, now)
	c.Personality.Learnings = append(c.Personality.Learnings, created...)

	if len(c.Personality.Learnings) > learningCleanupThreshold {
		c.Personality.Learnings = m.adapt.Cleanup(c.Personality.Learnings, now)
	}

	c.Personality.Base = m.adapt.AdaptPersonality(c.Personality.Base, c.Personality.Learnings, now)
}

func relationshipQuality(relationship string) float64 {
	switch relationship {
	case "strong_bond":
		return 0.9
	case "good":
		return 0.7
	case "strained":
		return 0.3
	case "poor":
		return 0.1
	default:
		return 0.5
	}
}

// interactionFrequency maps idle time onto [0,1]: frequent recent
// interaction scores high.
func interactionFrequency(hoursIdle float64) float64 {
	switch {
	case hoursIdle < 1:
		return 1.0
	case hoursIdle < 6:
		return 0.7
	case hoursIdle < 24:
		return 0.4
	default:
		return 0.1
	}
}

func emotionForChange(happinessChange float64) string {
	switch {
	case happinessChange > 0:
		return "happy"
	case happinessChange < 0:
		return "sad"
	default:
		return "neutral"
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
