package adaptation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nidhogg/creature-mind/internal/trait"
)

const (
	// patternThreshold is the confidence needed before a learning
	// influences decisions.
	patternThreshold = 0.7
	// adaptationStrength scales how hard learnings push preferences.
	adaptationStrength = 0.3
	// similarityThreshold decides when a new pattern reinforces an
	// existing learning instead of creating a duplicate.
	similarityThreshold = 0.7
	// maxLearningsPerType bounds memory growth per learning type.
	maxLearningsPerType = 50
)

// Observation describes the interaction that just happened.
type Observation struct {
	UserIntent     string            `json:"user_intent,omitempty"`
	UserTone       string            `json:"user_tone,omitempty"`
	Type           string            `json:"type,omitempty"`
	PrimaryEmotion string            `json:"primary_emotion,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

// Outcome describes how the interaction turned out.
type Outcome struct {
	HappinessChange float64 `json:"happiness_change"`
	ActionStyle     string  `json:"action_style,omitempty"`
	EmotionalState  string  `json:"emotional_state,omitempty"`
}

// DecisionContext is the situational information used to judge which
// learnings are relevant right now.
type DecisionContext struct {
	Fields map[string]string
	Tags   []string
}

// Engine runs learning, recall and cleanup over a creature's memories.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

type opportunity struct {
	typ      LearningType
	pattern  map[string]string
	response Response
	success  bool
	strength float64
}

// Learn extracts learning opportunities from an interaction. Patterns
// similar to an existing learning reinforce it in place; novel ones
// come back as new memories for the caller to keep.
func (e *Engine) Learn(obs Observation, out Outcome, existing []*Memory, now time.Time) (created []*Memory, reinforced []*Memory) {
	for _, op := range e.opportunities(obs, out) {
		if prior := findSimilar(existing, op.typ, op.pattern); prior != nil {
			prior.Reinforce(op.success, op.strength, now)
			reinforced = append(reinforced, prior)
			continue
		}
		created = append(created, newMemory(op, out, obs.Context, now))
	}
	return created, reinforced
}

func (e *Engine) opportunities(obs Observation, out Outcome) []opportunity {
	success := out.HappinessChange > 0
	var ops []opportunity

	if obs.UserIntent != "" {
		tone := obs.UserTone
		if tone == "" {
			tone = "neutral"
		}
		strength := abs(out.HappinessChange) / 20.0
		if strength > 1.0 {
			strength = 1.0
		}
		ops = append(ops, opportunity{
			typ: LearningUserPreference,
			pattern: map[string]string{
				"user_intent":      obs.UserIntent,
				"user_tone":        tone,
				"outcome_success":  strconv.FormatBool(success),
				"happiness_change": strconv.FormatFloat(out.HappinessChange, 'f', -1, 64),
			},
			response: Response{UserIntent: obs.UserIntent, Success: success},
			success:  success,
			strength: strength,
		})
	}

	if out.ActionStyle != "" {
		pattern := map[string]string{
			"action_style":    out.ActionStyle,
			"outcome_success": strconv.FormatBool(success),
			"emotional_state": defaultStr(out.EmotionalState, "neutral"),
		}
		for k, v := range obs.Context {
			pattern["ctx_"+k] = v
		}
		ops = append(ops, opportunity{
			typ:      LearningBehavioralPattern,
			pattern:  pattern,
			response: Response{ActionStyle: out.ActionStyle, Success: success, ResultingState: defaultStr(out.EmotionalState, "neutral")},
			success:  success,
			strength: 1.0,
		})
	}

	if obs.PrimaryEmotion != "" {
		ops = append(ops, opportunity{
			typ: LearningEmotionalPattern,
			pattern: map[string]string{
				"trigger_emotion": obs.PrimaryEmotion,
				"context_type":    defaultStr(obs.Type, "unknown"),
				"resulting_state": defaultStr(out.EmotionalState, "neutral"),
				"satisfaction":    strconv.FormatBool(success),
			},
			response: Response{ResultingState: defaultStr(out.EmotionalState, "neutral"), Success: success},
			success:  success,
			strength: 0.8,
		})
	}

	if activity := obs.Context["activity"]; activity != "" {
		ops = append(ops, opportunity{
			typ: LearningContextualResponse,
			pattern: map[string]string{
				"context_type":           "activity",
				"specific_context":       activity,
				"response_effectiveness": strconv.FormatBool(success),
				"emotional_result":       defaultStr(out.EmotionalState, "neutral"),
			},
			response: Response{ResultingState: defaultStr(out.EmotionalState, "neutral"), Success: success},
			success:  success,
			strength: 0.9,
		})
	}

	return ops
}

func findSimilar(existing []*Memory, typ LearningType, pattern map[string]string) *Memory {
	for _, m := range existing {
		if m.Type != typ {
			continue
		}
		if patternSimilarity(m.Trigger, pattern) > similarityThreshold {
			return m
		}
	}
	return nil
}

// patternSimilarity scores shared keys: exact match counts fully,
// case-insensitive match counts half.
func patternSimilarity(a, b map[string]string) float64 {
	var common int
	var matches float64
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			continue
		}
		common++
		switch {
		case av == bv:
			matches += 1.0
		case strings.EqualFold(av, bv):
			matches += 0.5
		}
	}
	if common == 0 {
		return 0
	}
	return matches / float64(common)
}

func newMemory(op opportunity, out Outcome, ctx map[string]string, now time.Time) *Memory {
	confidence := 0.5 + min(abs(out.HappinessChange)/40.0, 0.3)

	return &Memory{
		ID:             string(op.typ) + "_" + uuid.NewString(),
		Type:           op.typ,
		Description:    describe(op),
		Trigger:        op.pattern,
		Response:       op.response,
		Confidence:     clamp01(confidence),
		Reinforcements: 1,
		SuccessRate:    0.5,
		LastReinforced: now,
		CreatedAt:      now,
		Tags:           contextTags(op.pattern, ctx),
	}
}

func describe(op opportunity) string {
	switch op.typ {
	case LearningUserPreference:
		verb := "dislikes"
		if op.success {
			verb = "enjoys"
		}
		return fmt.Sprintf("User %s %s interactions", verb, op.pattern["user_intent"])
	case LearningBehavioralPattern:
		adj := "Ineffective"
		if op.success {
			adj = "Effective"
		}
		return fmt.Sprintf("%s %s behavior in this context", adj, op.pattern["action_style"])
	case LearningEmotionalPattern:
		return fmt.Sprintf("%s emotions lead to %s responses",
			capitalize(op.pattern["trigger_emotion"]), op.pattern["resulting_state"])
	default:
		return "Learned pattern for " + string(op.typ)
	}
}

func contextTags(pattern, ctx map[string]string) []string {
	var tags []string
	if v := pattern["user_intent"]; v != "" {
		tags = append(tags, "intent_"+v)
	}
	if v := pattern["action_style"]; v != "" {
		tags = append(tags, "style_"+v)
	}
	if v := ctx["activity"]; v != "" {
		tags = append(tags, "activity_"+v)
	}
	if v := ctx["mood"]; v != "" {
		tags = append(tags, "mood_"+v)
	}
	return tags
}

// ApplyToDecision folds confident, relevant learnings into action
// preference scores. Without learnings every action sits at 0.5.
func (e *Engine) ApplyToDecision(ctx DecisionContext, actions []string, learnings []*Memory, base map[string]float64, now time.Time) map[string]float64 {
	prefs := make(map[string]float64, len(actions))
	for _, a := range actions {
		prefs[a] = 0.5
	}
	for a, v := range base {
		prefs[a] = v
	}

	for _, m := range learnings {
		if m.Confidence < patternThreshold {
			continue
		}
		relevance := e.relevance(m, ctx, now)
		if relevance < 0.3 {
			continue
		}

		influence := actionPreferences(m, actions)
		strength := m.Strength(now) * relevance * adaptationStrength
		for action, inf := range influence {
			if cur, ok := prefs[action]; ok {
				prefs[action] = clamp01(cur + inf*strength)
			}
		}
	}
	return prefs
}

// relevance scores how well a learning's trigger matches the current
// situation: 0.3 per exact field match, 0.1 per substring match, plus
// up to 0.4 from tag overlap, all scaled by the learning's strength.
func (e *Engine) relevance(m *Memory, ctx DecisionContext, now time.Time) float64 {
	var score float64
	for key, value := range ctx.Fields {
		tv, ok := m.Trigger[key]
		if !ok {
			continue
		}
		switch {
		case tv == value:
			score += 0.3
		case strings.Contains(strings.ToLower(value), strings.ToLower(tv)):
			score += 0.1
		}
	}

	if len(m.Tags) > 0 {
		current := make(map[string]bool, len(ctx.Tags))
		for _, t := range ctx.Tags {
			current[t] = true
		}
		var overlap int
		for _, t := range m.Tags {
			if current[t] {
				overlap++
			}
		}
		score += float64(overlap) / float64(len(m.Tags)) * 0.4
	}

	score *= m.Strength(now)
	if score > 1.0 {
		return 1.0
	}
	return score
}

var styleActionMap = map[string]map[string]float64{
	"playful":     {"play": 0.8, "social": 0.6},
	"nurturing":   {"pet": 0.8, "care": 0.7},
	"curious":     {"explore": 0.8, "learn": 0.7},
	"social":      {"play": 0.7, "interact": 0.8},
	"independent": {"rest": 0.6, "explore": 0.5},
}

func actionPreferences(m *Memory, actions []string) map[string]float64 {
	prefs := map[string]float64{}

	switch m.Type {
	case LearningBehavioralPattern:
		styleActions := styleActionMap[m.Response.ActionStyle]
		for _, action := range actions {
			lower := strings.ToLower(action)
			for mapped, pref := range styleActions {
				if strings.Contains(lower, mapped) {
					prefs[action] = pref
				}
			}
		}
	case LearningUserPreference:
		value := 0.3
		if m.Response.Success {
			value = 0.7
		}
		words := strings.Fields(strings.ToLower(m.Response.UserIntent))
		for _, action := range actions {
			lower := strings.ToLower(action)
			for _, w := range words {
				if strings.Contains(lower, w) {
					prefs[action] = value
					break
				}
			}
		}
	}
	return prefs
}

// AdaptPersonality applies tiny long-term trait drifts from strong,
// consistently successful learnings.
func (e *Engine) AdaptPersonality(base trait.Vector, learnings []*Memory, now time.Time) trait.Vector {
	adaptations := map[string]float64{}

	for _, m := range learnings {
		switch m.Type {
		case LearningBehavioralPattern:
			if m.Strength(now) > 0.7 && m.SuccessRate > 0.7 {
				switch m.Response.ActionStyle {
				case "social":
					adaptations["sociability"] += 0.1
					adaptations["extraversion"] += 0.05
				case "curious":
					adaptations["curiosity"] += 0.1
					adaptations["openness"] += 0.05
				}
			}
		case LearningEmotionalPattern:
			if m.Strength(now) > 0.6 && m.SuccessRate > 0.7 && m.Response.ResultingState == "happy" {
				adaptations["optimism"] += 0.08
				adaptations["emotional_stability"] += 0.05
			}
		}
	}

	out := base
	for name, strength := range adaptations {
		if idx, ok := trait.Index(name); ok {
			out[idx] += strength * 0.01
		}
	}
	return out.Clamp()
}

// Cleanup drops weak learnings and caps each type at the strongest
// maxLearningsPerType entries.
func (e *Engine) Cleanup(learnings []*Memory, now time.Time) []*Memory {
	byType := map[LearningType][]*Memory{}
	for _, m := range learnings {
		byType[m.Type] = append(byType[m.Type], m)
	}

	var kept []*Memory
	for _, group := range byType {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Strength(now) > group[j].Strength(now)
		})
		var strong []*Memory
		for _, m := range group {
			if m.Strength(now) > 0.2 {
				strong = append(strong, m)
			}
		}
		if len(strong) > maxLearningsPerType {
			strong = strong[:maxLearningsPerType]
		}
		kept = append(kept, strong...)
	}
	return kept
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
