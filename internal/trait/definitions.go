package trait

// Dim is the number of dimensions in a personality vector.
const Dim = 50

// Definition describes one personality trait dimension.
type Definition struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Desc     string `json:"description"`
	Category string `json:"category"`
	LowDesc  string `json:"low_description"`
	HighDesc string `json:"high_description"`
}

// Definitions is the canonical trait table. Index positions are stable:
// serialized vectors and weight matrices depend on this ordering.
var Definitions = [Dim]Definition{
	{0, "openness", "Openness to experience", "core", "conventional, prefers routine", "curious, open to new experiences"},
	{1, "conscientiousness", "Conscientiousness and organization", "core", "spontaneous, flexible", "organized, disciplined"},
	{2, "extraversion", "Extraversion and social energy", "core", "reserved, independent", "outgoing, energetic"},
	{3, "agreeableness", "Agreeableness and cooperation", "core", "competitive, skeptical", "cooperative, trusting"},
	{4, "neuroticism", "Emotional stability", "core", "calm, emotionally stable", "sensitive, emotionally reactive"},
	{5, "curiosity", "Intellectual curiosity", "cognitive", "content with known", "eager to explore and learn"},
	{6, "creativity", "Creative thinking", "cognitive", "practical, conventional", "imaginative, innovative"},
	{7, "adaptability", "Ability to adapt to change", "adaptation", "prefers stability", "embraces change easily"},
	{8, "resilience", "Emotional resilience", "adaptation", "sensitive to setbacks", "bounces back quickly"},
	{9, "empathy", "Emotional empathy", "social", "logical, detached", "deeply empathetic"},
	{10, "assertiveness", "Assertiveness in communication", "social", "passive, yields easily", "direct, stands ground"},
	{11, "patience", "Patience with processes", "self_regulation", "impatient, wants quick results", "patient, waits calmly"},
	{12, "self_efficacy", "Belief in own abilities", "self_regulation", "doubts capabilities", "confident in abilities"},
	{13, "integrity", "Moral integrity", "character", "flexible morals", "strong moral principles"},
	{14, "humility", "Humility and modesty", "character", "prideful, boastful", "modest, humble"},
	{15, "optimism", "Optimistic outlook", "emotional", "pessimistic, expects worst", "optimistic, expects best"},
	{16, "ambition", "Drive for achievement", "drive", "content with current state", "driven to achieve more"},
	{17, "altruism", "Concern for others", "social", "self-focused", "others-focused, helpful"},
	{18, "confidence", "Self-confidence", "self_regulation", "insecure, self-doubting", "confident, self-assured"},
	{19, "self_control", "Self-control and discipline", "self_regulation", "impulsive, acts on feelings", "controlled, thinks before acting"},
	{20, "emotional_stability", "Emotional stability", "emotional", "emotionally volatile", "emotionally steady"},
	{21, "emotional_expressiveness", "Emotional expressiveness", "emotional", "reserved, hides emotions", "expressive, shows emotions"},
	{22, "tolerance", "Tolerance for differences", "social", "judgmental, intolerant", "accepting, tolerant"},
	{23, "trust", "Trust in others", "social", "suspicious, distrustful", "trusting, believes in others"},
	{24, "risk_taking", "Willingness to take risks", "behavioral", "risk-averse, cautious", "risk-taking, adventurous"},
	{25, "innovativeness", "Drive to innovate", "cognitive", "traditional, follows patterns", "innovative, breaks new ground"},
	{26, "pragmatism", "Practical approach", "thinking", "idealistic, theoretical", "pragmatic, practical"},
	{27, "sociability", "Enjoyment of social interaction", "social", "prefers solitude", "enjoys social interaction"},
	{28, "independence", "Preference for independence", "behavioral", "depends on others", "independent, self-reliant"},
	{29, "competitiveness", "Competitive drive", "drive", "collaborative, non-competitive", "competitive, wants to win"},
	{30, "perseverance", "Persistence through difficulties", "drive", "gives up easily", "persists through challenges"},
	{31, "focus", "Ability to maintain focus", "cognitive", "easily distracted", "maintains focus well"},
	{32, "detail_orientation", "Attention to detail", "cognitive", "big picture, ignores details", "detail-focused, precise"},
	{33, "big_picture_thinking", "Systems thinking ability", "cognitive", "focuses on parts", "sees whole systems"},
	{34, "decisiveness", "Speed of decision making", "cognitive", "indecisive, deliberates long", "decisive, chooses quickly"},
	{35, "reflectiveness", "Tendency to reflect deeply", "cognitive", "acts without reflection", "reflects before acting"},
	{36, "self_awareness", "Understanding of own thoughts and feelings", "emotional", "limited self-knowledge", "highly self-aware"},
	{37, "empathic_accuracy", "Accuracy in reading others", "social", "misreads others often", "accurately reads others"},
	{38, "enthusiasm", "Enthusiasm and energy", "emotional", "low energy, unenthusiastic", "high energy, enthusiastic"},
	{39, "curiosity_intellectual", "Intellectual curiosity", "cognitive", "lacks intellectual interest", "intellectually curious"},
	{40, "systematic_thinking", "Systematic approach to problems", "cognitive", "unsystematic, random approach", "systematic, methodical"},
	{41, "open_mindedness", "Openness to new ideas", "cognitive", "closed-minded, rigid", "open-minded, flexible thinking"},
	{42, "resourcefulness", "Ability to find solutions", "practical", "struggles to find solutions", "resourceful, finds ways"},
	{43, "collaboration", "Ability to work with others", "social", "works alone, poor collaborator", "excellent collaborator"},
	{44, "humor", "Use of humor", "social", "serious, rarely uses humor", "humorous, uses humor well"},
	{45, "mindfulness", "Present-moment awareness", "emotional", "distracted, unaware", "mindful, present-focused"},
	{46, "caution", "Cautious approach", "behavioral", "reckless, acts without thought", "cautious, considers risks"},
	{47, "boldness", "Willingness to be bold", "behavioral", "timid, avoids bold actions", "bold, takes brave actions"},
	{48, "altruistic_leadership", "Leadership for others' benefit", "leadership", "leads for self-benefit", "leads to help others"},
	{49, "ethical_reasoning", "Ethical reasoning ability", "character", "poor ethical reasoning", "strong ethical reasoning"},
}

var nameToIndex = func() map[string]int {
	m := make(map[string]int, Dim)
	for _, d := range Definitions {
		m[d.Name] = d.Index
	}
	return m
}()

// Index returns the vector index for a trait name.
// Unknown names report ok=false and are ignored by callers.
func Index(name string) (int, bool) {
	i, ok := nameToIndex[name]
	return i, ok
}

// Name returns the canonical name for a vector index, or "" if out of range.
func Name(i int) string {
	if i < 0 || i >= Dim {
		return ""
	}
	return Definitions[i].Name
}
