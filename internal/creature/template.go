package creature

import "math/rand"

// LanguageConfig controls how a creature species vocalizes and when
// its utterances can be translated for the user.
type LanguageConfig struct {
	Sounds                map[string][]string `json:"sounds,omitempty"`
	TranslationConditions map[string]string   `json:"translation_conditions,omitempty"`
	BehavioralPatterns    []string            `json:"behavioral_patterns,omitempty"`
}

// ActivityConfig describes one activity a creature type can perform
// and its effect on stats.
type ActivityConfig struct {
	Name          string             `json:"name"`
	StatEffects   map[string]float64 `json:"stat_effects,omitempty"`
	EnergyCost    float64            `json:"energy_cost,omitempty"`
	Description   string             `json:"description,omitempty"`
	RequiredStats map[string]float64 `json:"required_stats,omitempty"`
}

// Template defines a creature type: its stats, sounds, activities and
// default personality.
type Template struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Species          string                `json:"species"`
	Category         string                `json:"category,omitempty"`
	Description      string                `json:"description,omitempty"`
	DefaultTraits    []string              `json:"default_personality_traits,omitempty"`
	StatConfigs      map[string]StatConfig `json:"stat_configs"`
	Language         LanguageConfig        `json:"language"`
	Activities       []ActivityConfig      `json:"activities,omitempty"`
	DefaultArchetype string                `json:"default_archetype,omitempty"`
}

// Activity finds an activity by name.
func (t *Template) Activity(name string) (ActivityConfig, bool) {
	for _, a := range t.Activities {
		if a.Name == name {
			return a, true
		}
	}
	return ActivityConfig{}, false
}

// SoundFor picks a vocalization for an emotion, biased by energy:
// low energy favors the first (quieter) sound, high energy the last.
func (t *Template) SoundFor(emotion string, energy float64, rng *rand.Rand) string {
	sounds, ok := t.Language.Sounds[emotion]
	if !ok {
		sounds = t.Language.Sounds["neutral"]
	}
	if len(sounds) == 0 {
		return "*quiet sound*"
	}
	switch {
	case energy < 30:
		return sounds[0]
	case energy > 70:
		return sounds[len(sounds)-1]
	default:
		return sounds[rng.Intn(len(sounds))]
	}
}

// BaseTemplates are the built-in creature types. Custom templates can
// extend these via configuration.
var BaseTemplates = map[string]*Template{
	"base_mammal": {
		ID:      "base_mammal",
		Name:    "Base Mammal",
		Species: "mammal",
		StatConfigs: map[string]StatConfig{
			"happiness": {MinValue: 0, MaxValue: 100, DecayRate: 0.1, DefaultStart: 75},
			"energy":    {MinValue: 0, MaxValue: 100, DecayRate: 0.2, DefaultStart: 80},
			"hunger":    {MinValue: 0, MaxValue: 100, DecayRate: 0.3, DefaultStart: 40},
		},
		Language: LanguageConfig{
			Sounds: map[string][]string{
				"happy":   {"*content sound*"},
				"sad":     {"*whimper*"},
				"excited": {"*energetic sound*"},
				"tired":   {"*yawn*"},
				"neutral": {"*quiet sound*"},
			},
			TranslationConditions: map[string]string{
				"happiness": "> 40",
				"energy":    "> 30",
			},
		},
		Activities: []ActivityConfig{
			{Name: "feed", StatEffects: map[string]float64{"hunger": -30, "happiness": 5}, Description: "Being fed a meal"},
			{Name: "play", StatEffects: map[string]float64{"happiness": 15}, EnergyCost: 10, Description: "An energetic play session", RequiredStats: map[string]float64{"energy": 20}},
			{Name: "pet", StatEffects: map[string]float64{"happiness": 10}, Description: "Gentle petting and affection"},
			{Name: "walk", StatEffects: map[string]float64{"happiness": 10}, EnergyCost: 15, Description: "A walk exploring outside", RequiredStats: map[string]float64{"energy": 25}},
			{Name: "train", StatEffects: map[string]float64{"happiness": 5}, EnergyCost: 12, Description: "A training session learning something new", RequiredStats: map[string]float64{"energy": 20}},
			{Name: "rest", StatEffects: map[string]float64{"energy": 30}, Description: "A restorative nap"},
		},
	},
	"base_reptile": {
		ID:      "base_reptile",
		Name:    "Base Reptile",
		Species: "reptile",
		StatConfigs: map[string]StatConfig{
			"happiness":   {MinValue: 0, MaxValue: 100, DecayRate: 0.05, DefaultStart: 60},
			"energy":      {MinValue: 0, MaxValue: 100, DecayRate: 0.1, DefaultStart: 70},
			"temperature": {MinValue: 0, MaxValue: 100, DecayRate: 0.15, DefaultStart: 75},
		},
		Language: LanguageConfig{
			Sounds: map[string][]string{
				"happy": {"*content hiss*"},
				"angry": {"*warning hiss*", "*aggressive rattle*"},
				"cold":  {"*sluggish movement*"},
				"warm":  {"*basking stretch*"},
			},
			TranslationConditions: map[string]string{
				"happiness":   "> 30",
				"temperature": "> 50",
			},
		},
		Activities: []ActivityConfig{
			{Name: "feed", StatEffects: map[string]float64{"happiness": 10}, Description: "Being fed"},
			{Name: "bask", StatEffects: map[string]float64{"temperature": 25, "happiness": 5}, Description: "Basking under the heat lamp"},
			{Name: "rest", StatEffects: map[string]float64{"energy": 25}, Description: "Resting in the hide"},
		},
	},
	"base_mythical": {
		ID:      "base_mythical",
		Name:    "Base Mythical Creature",
		Species: "mythical",
		StatConfigs: map[string]StatConfig{
			"happiness":     {MinValue: 0, MaxValue: 100, DecayRate: 0.08, DefaultStart: 70},
			"energy":        {MinValue: 0, MaxValue: 100, DecayRate: 0.12, DefaultStart: 85},
			"magical_power": {MinValue: 0, MaxValue: 100, DecayRate: 0.05, DefaultStart: 90},
		},
		Language: LanguageConfig{
			Sounds: map[string][]string{
				"mystical": {"*ethereal shimmer*", "*magical resonance*"},
				"powerful": {"*ancient rumble*", "*otherworldly presence*"},
				"weakened": {"*fading glow*", "*tired magic*"},
			},
			TranslationConditions: map[string]string{
				"magical_power": "> 40",
			},
		},
		Activities: []ActivityConfig{
			{Name: "feed", StatEffects: map[string]float64{"happiness": 10}, Description: "Consuming an offering"},
			{Name: "play", StatEffects: map[string]float64{"happiness": 15, "magical_power": 5}, EnergyCost: 10, Description: "Playful display of magic", RequiredStats: map[string]float64{"energy": 20}},
			{Name: "rest", StatEffects: map[string]float64{"energy": 30, "magical_power": 10}, Description: "Restoring magical reserves"},
		},
	},
}

// LookupTemplate resolves a template id against the built-ins.
func LookupTemplate(id string) (*Template, bool) {
	t, ok := BaseTemplates[id]
	return t, ok
}
