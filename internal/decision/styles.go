package decision

// Style is one of the ten interaction styles the utility model scores.
type Style string

const (
	StylePlayful     Style = "playful"
	StyleCautious    Style = "cautious"
	StyleAssertive   Style = "assertive"
	StyleNurturing   Style = "nurturing"
	StyleCurious     Style = "curious"
	StyleDefensive   Style = "defensive"
	StyleSocial      Style = "social"
	StyleIndependent Style = "independent"
	StyleAnalytical  Style = "analytical"
	StyleEmotional   Style = "emotional"
)

// Styles lists every style in canonical order. Weight matrices, bias
// vectors and utility slices are all indexed by position in this list.
var Styles = []Style{
	StylePlayful,
	StyleCautious,
	StyleAssertive,
	StyleNurturing,
	StyleCurious,
	StyleDefensive,
	StyleSocial,
	StyleIndependent,
	StyleAnalytical,
	StyleEmotional,
}

var styleIndex = func() map[Style]int {
	m := make(map[Style]int, len(Styles))
	for i, s := range Styles {
		m[s] = i
	}
	return m
}()

// StyleIndex returns the canonical position of s, or -1 if unknown.
func StyleIndex(s Style) int {
	if i, ok := styleIndex[s]; ok {
		return i
	}
	return -1
}

// StyleInfo describes how a style expresses itself in behavior.
type StyleInfo struct {
	Description      string   `json:"description"`
	PrimaryTraits    []string `json:"primary_traits"`
	BehaviorTags     []string `json:"behavior_tags"`
	EnergyLevel      string   `json:"energy_level"`
	SocialPreference string   `json:"social_preference"`
}

var styleInfo = map[Style]StyleInfo{
	StylePlayful: {
		Description:      "Energetic, fun-loving, and spontaneous behavior",
		PrimaryTraits:    []string{"extraversion", "openness", "enthusiasm", "sociability"},
		BehaviorTags:     []string{"energetic", "bouncy", "enthusiastic", "spontaneous", "fun-loving"},
		EnergyLevel:      "high",
		SocialPreference: "social",
	},
	StyleCautious: {
		Description:      "Careful, observant, and measured responses",
		PrimaryTraits:    []string{"conscientiousness", "caution", "neuroticism", "risk_taking"},
		BehaviorTags:     []string{"careful", "observant", "deliberate", "measured", "wary"},
		EnergyLevel:      "low",
		SocialPreference: "neutral",
	},
	StyleAssertive: {
		Description:      "Confident, direct, and decisive behavior",
		PrimaryTraits:    []string{"assertiveness", "confidence", "decisiveness", "boldness"},
		BehaviorTags:     []string{"confident", "direct", "bold", "decisive", "commanding"},
		EnergyLevel:      "medium",
		SocialPreference: "neutral",
	},
	StyleNurturing: {
		Description:      "Caring, gentle, and protective responses",
		PrimaryTraits:    []string{"agreeableness", "empathy", "altruism", "emotional_expressiveness"},
		BehaviorTags:     []string{"gentle", "caring", "protective", "comforting", "supportive"},
		EnergyLevel:      "low",
		SocialPreference: "social",
	},
	StyleCurious: {
		Description:      "Inquisitive, exploratory, and investigative",
		PrimaryTraits:    []string{"curiosity", "openness", "curiosity_intellectual", "innovativeness"},
		BehaviorTags:     []string{"investigating", "exploring", "questioning", "examining", "discovering"},
		EnergyLevel:      "medium",
		SocialPreference: "neutral",
	},
	StyleDefensive: {
		Description:      "Protective, wary, and self-preserving",
		PrimaryTraits:    []string{"neuroticism", "caution", "independence", "trust"},
		BehaviorTags:     []string{"wary", "protective", "alert", "guarded", "vigilant"},
		EnergyLevel:      "medium",
		SocialPreference: "solitary",
	},
	StyleSocial: {
		Description:      "Friendly, engaging, and connection-seeking",
		PrimaryTraits:    []string{"extraversion", "sociability", "agreeableness", "collaboration"},
		BehaviorTags:     []string{"friendly", "engaging", "sociable", "welcoming", "interactive"},
		EnergyLevel:      "medium",
		SocialPreference: "social",
	},
	StyleIndependent: {
		Description:      "Self-reliant, autonomous, and self-directed",
		PrimaryTraits:    []string{"independence", "self_efficacy", "confidence", "assertiveness"},
		BehaviorTags:     []string{"autonomous", "self-directed", "aloof", "self-reliant", "solitary"},
		EnergyLevel:      "low",
		SocialPreference: "solitary",
	},
	StyleAnalytical: {
		Description:      "Thoughtful, systematic, and problem-solving",
		PrimaryTraits:    []string{"systematic_thinking", "conscientiousness", "focus", "reflectiveness"},
		BehaviorTags:     []string{"thoughtful", "systematic", "logical", "methodical", "deliberate"},
		EnergyLevel:      "medium",
		SocialPreference: "neutral",
	},
	StyleEmotional: {
		Description:      "Expressive, empathetic, and feeling-focused",
		PrimaryTraits:    []string{"emotional_expressiveness", "empathy", "neuroticism", "self_awareness"},
		BehaviorTags:     []string{"expressive", "empathetic", "sensitive", "responsive", "feeling-focused"},
		EnergyLevel:      "low",
		SocialPreference: "social",
	},
}

// styleMetadata copies the built-in style table so a model artifact
// carries its own independent copy.
func styleMetadata() map[Style]StyleInfo {
	m := make(map[Style]StyleInfo, len(styleInfo))
	for s, info := range styleInfo {
		m[s] = info
	}
	return m
}

var fallbackStyleInfo = StyleInfo{
	Description:      "Act naturally according to your species",
	PrimaryTraits:    []string{},
	BehaviorTags:     []string{"natural"},
	EnergyLevel:      "medium",
	SocialPreference: "neutral",
}

// Guidance returns the behavioral description for a style. Unknown
// styles get a neutral fallback rather than an error.
func Guidance(s Style) StyleInfo {
	if info, ok := styleInfo[s]; ok {
		return info
	}
	return fallbackStyleInfo
}

// BehaviorTags returns the behavior hints for a style.
func BehaviorTags(s Style) []string {
	return Guidance(s).BehaviorTags
}
