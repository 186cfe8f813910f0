package decision

import "strings"

// ContextDim is the number of situational features.
const ContextDim = 25

// Context feature indices. Weight matrices are column-indexed by these,
// so the ordering is part of the persisted artifact format.
const (
	ctxEmotionalIntensity = iota
	ctxEmotionalValence
	ctxEmotionalStability
	ctxUserMood
	ctxCreatureMood
	ctxIntentSocial
	ctxIntentCare
	ctxIntentPlay
	ctxIntentCommand
	ctxRelationshipQuality
	ctxEnergyLevel
	ctxPhysicalNeeds
	ctxComfortLevel
	ctxSafetyLevel
	ctxFamiliarity
	ctxComplexity
	ctxNovelty
	ctxProblemSolving
	ctxLearningOpportunity
	ctxCreativePotential
	ctxTimePressure
	ctxRoutineVsSpecial
	ctxRecentActivity
	ctxFatigue
	ctxAnticipation
)

var contextIndex = map[string]int{
	"emotional_intensity":     ctxEmotionalIntensity,
	"emotional_valence":       ctxEmotionalValence,
	"emotional_stability":     ctxEmotionalStability,
	"user_mood":               ctxUserMood,
	"creature_mood":           ctxCreatureMood,
	"user_intent_social":      ctxIntentSocial,
	"user_intent_care":        ctxIntentCare,
	"user_intent_play":        ctxIntentPlay,
	"user_intent_command":     ctxIntentCommand,
	"relationship_quality":    ctxRelationshipQuality,
	"energy_level":            ctxEnergyLevel,
	"physical_needs":          ctxPhysicalNeeds,
	"comfort_level":           ctxComfortLevel,
	"safety_level":            ctxSafetyLevel,
	"environment_familiarity": ctxFamiliarity,
	"complexity_level":        ctxComplexity,
	"novelty_level":           ctxNovelty,
	"problem_solving_needed":  ctxProblemSolving,
	"learning_opportunity":    ctxLearningOpportunity,
	"creative_potential":      ctxCreativePotential,
	"time_pressure":           ctxTimePressure,
	"routine_vs_special":      ctxRoutineVsSpecial,
	"recent_activity_level":   ctxRecentActivity,
	"fatigue_level":           ctxFatigue,
	"anticipation_level":      ctxAnticipation,
}

// ContextVector encodes one situation as 25 features in [0,1].
// It is recomputed fresh per decision and carries no state.
type ContextVector [ContextDim]float64

// PerceptionResult is the structured output of the upstream perception
// step. All fields are plain values; unknown labels degrade to neutral
// encodings rather than failing.
type PerceptionResult struct {
	Tone           string `json:"tone"`
	Intent         string `json:"intent"`
	IntentDetails  string `json:"intent_details"`
	Relevance      string `json:"relevance"`
	AttentionFocus string `json:"attention_focus"`
}

// EmotionResult is the structured output of the upstream emotion step.
type EmotionResult struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	SecondaryEmotions []string `json:"secondary_emotions"`
	ImpactScore       float64  `json:"impact_score"`
}

// MemoryResult is the structured output of the upstream memory step.
type MemoryResult struct {
	RelevantMemories string `json:"relevant_memories"`
	Patterns         string `json:"patterns"`
	Relationship     string `json:"relationship"`
	ContextImpact    string `json:"context_impact"`
}

// CreatureSnapshot is the creature's current observable state.
type CreatureSnapshot struct {
	Stats                 map[string]float64 `json:"stats"`
	Mood                  string             `json:"mood"`
	HoursSinceInteraction float64            `json:"hours_since_interaction"`
	PersonalityTraits     []string           `json:"personality_traits"`
}

var positiveEmotions = set("happy", "excited", "content", "joyful", "playful", "love")
var negativeEmotions = set("sad", "angry", "fear", "anxious", "frustrated", "lonely")
var positiveTones = set("happy", "excited", "playful", "affectionate", "encouraging")
var negativeTones = set("angry", "sad", "frustrated", "worried", "stern")

// physicalTones are recognized by the comfort and safety features even
// though they carry no mood valence.
var physicalTones = set("gentle", "calm", "soothing", "reassuring", "loud", "aggressive", "harsh", "threatening")

var moodScores = map[string]float64{
	"joyful": 0.9, "content": 0.7, "neutral": 0.5, "tired": 0.3, "unhappy": 0.1,
}

var relationshipScores = map[string]float64{
	"strong_bond": 0.9, "good": 0.7, "neutral": 0.5, "strained": 0.3, "poor": 0.1,
}

// EncodeContext builds the 25-feature situational vector. It is a total
// function: missing stats default to 50, unknown categorical labels map
// to neutral midpoints, and keyword ratios are capped at 1.0. The
// second return value counts the inputs that were missing or
// unrecognized and got a default encoding, so callers can surface
// degraded input quality.
func EncodeContext(p PerceptionResult, e EmotionResult, m MemoryResult, s CreatureSnapshot) (ContextVector, int) {
	var cv ContextVector
	skipped := countDefaulted(p, e, m, s)

	happiness := stat(s.Stats, "happiness") / 100.0
	energy := stat(s.Stats, "energy") / 100.0

	// Emotional features.
	cv[ctxEmotionalIntensity] = clamp01(abs(e.ImpactScore))
	cv[ctxEmotionalValence] = emotionalValence(e)
	cv[ctxEmotionalStability] = (happiness + energy) / 2.0
	cv[ctxUserMood] = toneScore(p.Tone)
	cv[ctxCreatureMood] = lookupOr(moodScores, s.Mood, 0.5)

	// Social intent features.
	intent := strings.ToLower(p.Intent + " " + p.IntentDetails)
	cv[ctxIntentSocial] = keywordRatio(intent, 3, "play", "talk", "interact", "social", "together", "friend")
	cv[ctxIntentCare] = keywordRatio(intent, 3, "care", "help", "comfort", "love", "pet", "gentle", "safe")
	cv[ctxIntentPlay] = keywordRatio(intent, 3, "play", "fun", "game", "toy", "fetch", "run", "energy")
	cv[ctxIntentCommand] = keywordRatio(intent, 3, "sit", "stay", "come", "stop", "do", "should", "must", "command")

	// Relationship and physical state features.
	cv[ctxRelationshipQuality] = lookupOr(relationshipScores, m.Relationship, 0.5)
	cv[ctxEnergyLevel] = energy
	cv[ctxPhysicalNeeds] = physicalNeeds(s.Stats)
	cv[ctxComfortLevel] = comfortLevel(happiness, p.Tone)
	cv[ctxSafetyLevel] = safetyLevel(p.Tone)
	cv[ctxFamiliarity] = familiarity(m.Patterns)

	// Cognitive and task features.
	cv[ctxComplexity] = keywordRatio(intent, 2, "complex", "difficult", "many", "multiple", "problem", "solve")
	cv[ctxNovelty] = novelty(m.Patterns)
	cv[ctxProblemSolving] = keywordRatio(intent, 3, "problem", "solve", "figure", "how", "why", "what", "find")
	cv[ctxLearningOpportunity] = keywordRatio(intent, 3, "learn", "teach", "show", "new", "try", "practice")
	cv[ctxCreativePotential] = keywordRatio(intent, 3, "create", "make", "invent", "imagine", "art", "creative", "new")

	// Temporal and activity features.
	cv[ctxTimePressure] = keywordRatio(intent, 2, "quick", "fast", "hurry", "urgent", "now", "immediate")
	cv[ctxRoutineVsSpecial] = routineVsSpecial(m.Patterns)
	cv[ctxRecentActivity] = recentActivity(s.HoursSinceInteraction)
	cv[ctxFatigue] = 1.0 - energy
	cv[ctxAnticipation] = anticipation(e.PrimaryEmotion)

	for i := range cv {
		cv[i] = clamp01(cv[i])
	}
	return cv, skipped
}

// countDefaulted tallies inputs the encoder could not use as given:
// absent core stats and non-empty labels outside the known vocabulary.
func countDefaulted(p PerceptionResult, e EmotionResult, m MemoryResult, s CreatureSnapshot) int {
	var n int
	for _, name := range []string{"happiness", "energy", "health"} {
		if _, ok := s.Stats[name]; !ok {
			n++
		}
	}
	if s.Mood != "" {
		if _, ok := moodScores[s.Mood]; !ok {
			n++
		}
	}
	if m.Relationship != "" {
		if _, ok := relationshipScores[m.Relationship]; !ok {
			n++
		}
	}
	if p.Tone != "" && !positiveTones[p.Tone] && !negativeTones[p.Tone] && !physicalTones[p.Tone] {
		n++
	}
	if e.PrimaryEmotion != "" && !positiveEmotions[e.PrimaryEmotion] && !negativeEmotions[e.PrimaryEmotion] {
		n++
	}
	return n
}

func emotionalValence(e EmotionResult) float64 {
	switch {
	case positiveEmotions[e.PrimaryEmotion]:
		return clamp01(0.7 + 0.3*e.ImpactScore)
	case negativeEmotions[e.PrimaryEmotion]:
		return clamp01(0.3 - 0.3*e.ImpactScore)
	default:
		return 0.5
	}
}

func toneScore(tone string) float64 {
	switch {
	case positiveTones[tone]:
		return 0.8
	case negativeTones[tone]:
		return 0.2
	default:
		return 0.5
	}
}

func physicalNeeds(stats map[string]float64) float64 {
	avg := (stat(stats, "energy") + stat(stats, "happiness") + stat(stats, "health")) / 3.0
	return 1.0 - avg/100.0
}

func comfortLevel(happiness float64, tone string) float64 {
	switch tone {
	case "gentle", "calm", "soothing":
		return clamp01(happiness + 0.2)
	case "loud", "aggressive", "harsh":
		return clamp01(happiness - 0.2)
	default:
		return happiness
	}
}

func safetyLevel(tone string) float64 {
	switch tone {
	case "threatening", "angry", "aggressive":
		return 0.2
	case "gentle", "calm", "reassuring":
		return 0.9
	default:
		return 0.7
	}
}

func familiarity(patterns string) float64 {
	switch {
	case patterns == "" || patterns == "none":
		return 0.3
	case strings.Contains(patterns, "similar"):
		return 0.7
	default:
		return 0.9
	}
}

func novelty(patterns string) float64 {
	switch {
	case patterns == "" || patterns == "none":
		return 0.8
	case strings.Contains(patterns, "similar"):
		return 0.4
	default:
		return 0.1
	}
}

func routineVsSpecial(patterns string) float64 {
	switch {
	case patterns == "" || patterns == "none":
		return 0.8
	case strings.Contains(patterns, "frequent"):
		return 0.2
	default:
		return 0.5
	}
}

func recentActivity(hours float64) float64 {
	switch {
	case hours < 1:
		return 0.8
	case hours < 6:
		return 0.5
	default:
		return 0.2
	}
}

func anticipation(emotion string) float64 {
	switch emotion {
	case "excited", "curious", "eager", "anticipation":
		return 0.8
	default:
		return 0.3
	}
}

func keywordRatio(text string, scale float64, keywords ...string) float64 {
	var hits float64
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	if hits > scale {
		return 1.0
	}
	return hits / scale
}

func stat(stats map[string]float64, name string) float64 {
	if v, ok := stats[name]; ok {
		return clampRange(v, 0, 100)
	}
	return 50
}

func lookupOr(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp01(f float64) float64 {
	return clampRange(f, 0, 1)
}

func clampRange(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
