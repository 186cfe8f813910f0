package evolution

// Conditions gate a rule on properties of the triggering event.
// A zero Conditions value always passes.
type Conditions struct {
	RequiresPositiveImpact bool
	RequiresNegativeImpact bool
	RequiresLearning       bool
}

func (c Conditions) met(ev Event) bool {
	if c.RequiresPositiveImpact && ev.EmotionalImpact <= 0 {
		return false
	}
	if c.RequiresNegativeImpact && ev.EmotionalImpact >= 0 {
		return false
	}
	if c.RequiresLearning && !ev.LearningOccurred {
		return false
	}
	return true
}

// Rule describes how one trigger moves one trait.
type Rule struct {
	Trait         string
	BaseMagnitude float64
	Invert        bool
	DecayHours    float64 // zero means DefaultDecayHours
	Conditions    Conditions
}

var evolutionRules = map[Trigger][]Rule{
	TriggerPositiveInteraction: {
		{Trait: "extraversion", BaseMagnitude: 0.008, Conditions: Conditions{RequiresPositiveImpact: true}},
		{Trait: "agreeableness", BaseMagnitude: 0.006, Conditions: Conditions{RequiresPositiveImpact: true}},
		{Trait: "confidence", BaseMagnitude: 0.005, Conditions: Conditions{RequiresPositiveImpact: true}},
		{Trait: "sociability", BaseMagnitude: 0.010, Conditions: Conditions{RequiresPositiveImpact: true}},
		{Trait: "trust", BaseMagnitude: 0.004},
	},
	TriggerNegativeInteraction: {
		{Trait: "caution", BaseMagnitude: 0.008, Conditions: Conditions{RequiresNegativeImpact: true}},
		{Trait: "trust", BaseMagnitude: 0.006, Invert: true},
		{Trait: "neuroticism", BaseMagnitude: 0.005, Conditions: Conditions{RequiresNegativeImpact: true}},
		{Trait: "independence", BaseMagnitude: 0.007},
		{Trait: "emotional_stability", BaseMagnitude: 0.004, Invert: true, Conditions: Conditions{RequiresNegativeImpact: true}},
	},
	TriggerLearningExperience: {
		{Trait: "curiosity", BaseMagnitude: 0.010, Conditions: Conditions{RequiresLearning: true}},
		{Trait: "openness", BaseMagnitude: 0.008, Conditions: Conditions{RequiresLearning: true}},
		{Trait: "systematic_thinking", BaseMagnitude: 0.003, Conditions: Conditions{RequiresLearning: true}},
		{Trait: "confidence", BaseMagnitude: 0.005},
		{Trait: "perseverance", BaseMagnitude: 0.006},
	},
	TriggerSocialBonding: {
		{Trait: "empathy", BaseMagnitude: 0.012},
		{Trait: "agreeableness", BaseMagnitude: 0.008},
		{Trait: "trust", BaseMagnitude: 0.010},
		{Trait: "emotional_expressiveness", BaseMagnitude: 0.007},
		{Trait: "altruism", BaseMagnitude: 0.006},
	},
	TriggerAchievement: {
		{Trait: "confidence", BaseMagnitude: 0.015},
		{Trait: "ambition", BaseMagnitude: 0.008},
		{Trait: "self_efficacy", BaseMagnitude: 0.012},
		{Trait: "optimism", BaseMagnitude: 0.006},
		{Trait: "perseverance", BaseMagnitude: 0.005},
	},
	TriggerFailure: {
		{Trait: "resilience", BaseMagnitude: 0.008},
		{Trait: "humility", BaseMagnitude: 0.006},
		{Trait: "caution", BaseMagnitude: 0.007},
		{Trait: "neuroticism", BaseMagnitude: 0.004},
		{Trait: "confidence", BaseMagnitude: 0.003, Invert: true},
	},
	TriggerStressEvent: {
		{Trait: "neuroticism", BaseMagnitude: 0.010},
		{Trait: "emotional_stability", BaseMagnitude: 0.008, Invert: true},
		{Trait: "resilience", BaseMagnitude: 0.006},
		{Trait: "independence", BaseMagnitude: 0.005},
		{Trait: "caution", BaseMagnitude: 0.007},
	},
	TriggerTimePassage: {
		{Trait: "reflectiveness", BaseMagnitude: 0.001, DecayHours: 720},
		{Trait: "emotional_stability", BaseMagnitude: 0.002, DecayHours: 720},
		{Trait: "patience", BaseMagnitude: 0.001, DecayHours: 720},
	},
}

// traitCorrelations propagates a fraction of a trait's change to the
// traits it correlates with.
var traitCorrelations = map[string]map[string]float64{
	"extraversion":      {"sociability": 0.7, "confidence": 0.5, "enthusiasm": 0.6},
	"conscientiousness": {"focus": 0.6, "self_control": 0.7, "perseverance": 0.8},
	"openness":          {"creativity": 0.8, "curiosity": 0.9, "innovativeness": 0.7},
	"agreeableness":     {"empathy": 0.8, "altruism": 0.7, "collaboration": 0.6},
	"neuroticism":       {"emotional_stability": -0.9, "resilience": -0.6, "confidence": -0.4},
	"empathy":           {"emotional_expressiveness": 0.6, "altruism": 0.7},
	"confidence":        {"assertiveness": 0.7, "decisiveness": 0.5},
	"creativity":        {"innovativeness": 0.8, "open_mindedness": 0.6},
}

// sustainedInfluences are tiny per-evolution nudges from a lingering
// emotional state, scaled by intensity and duration.
var sustainedInfluences = map[string]map[string]float64{
	"happy":   {"extraversion": 0.001, "optimism": 0.001, "sociability": 0.0008},
	"sad":     {"neuroticism": 0.0008, "emotional_stability": -0.0006},
	"angry":   {"assertiveness": 0.001, "neuroticism": 0.0008, "agreeableness": -0.0006},
	"excited": {"enthusiasm": 0.001, "extraversion": 0.0006},
	"calm":    {"emotional_stability": 0.0008, "patience": 0.0006, "neuroticism": -0.0004},
	"anxious": {"neuroticism": 0.001, "caution": 0.0008, "confidence": -0.0006},
}

var prosocialTraits = []string{"agreeableness", "empathy", "trust", "sociability", "collaboration"}
var defensiveTraits = []string{"caution", "independence", "neuroticism"}
