package decision

import "github.com/nidhogg/creature-mind/internal/trait"

// styleWeights maps a trait name to context-feature weights for one
// style. Keys in the inner map are normally context feature names; a
// key that is instead a trait name encodes a trait-trait relationship
// and spreads a tenth of its weight across the whole context row.
type styleWeights map[string]map[string]float64

var baseBiases = map[Style]float64{
	StylePlayful:     0.1,
	StyleCautious:    -0.1,
	StyleAssertive:   0.0,
	StyleNurturing:   0.2,
	StyleCurious:     0.15,
	StyleDefensive:   -0.2,
	StyleSocial:      0.1,
	StyleIndependent: -0.05,
	StyleAnalytical:  0.0,
	StyleEmotional:   0.05,
}

// baseWeights encodes the grounded trait-context-style relationships.
// Entries not listed here are filled with small gaussian noise when a
// model is initialized.
var baseWeights = map[Style]styleWeights{
	StylePlayful: {
		"extraversion": {
			"user_intent_play": 0.8, "emotional_valence": 0.7,
			"energy_level": 0.6, "user_intent_social": 0.5,
		},
		"openness": {
			"novelty_level": 0.7, "creative_potential": 0.6,
			"learning_opportunity": 0.5, "routine_vs_special": 0.4,
		},
		"enthusiasm": {
			"emotional_intensity": 0.6, "anticipation_level": 0.5,
			"user_intent_play": 0.7, "energy_level": 0.4,
		},
		"sociability": {
			"user_intent_social": 0.8, "relationship_quality": 0.6,
			"user_intent_play": 0.5,
		},
	},
	StyleCautious: {
		"conscientiousness": {
			"complexity_level": 0.7, "safety_level": 0.6,
			"time_pressure": 0.5, "problem_solving_needed": 0.4,
		},
		"caution": {
			"safety_level": 0.9, "novelty_level": -0.6,
			"environment_familiarity": -0.5, "risk_taking": -0.7,
		},
		"neuroticism": {
			"emotional_stability": -0.6, "safety_level": 0.5,
			"comfort_level": 0.4, "relationship_quality": 0.3,
		},
	},
	StyleAssertive: {
		"assertiveness": {
			"user_intent_command": 0.8, "complexity_level": 0.6,
			"relationship_quality": 0.4, "emotional_intensity": 0.3,
		},
		"confidence": {
			"user_intent_command": 0.7, "problem_solving_needed": 0.6,
			"emotional_valence": 0.5, "energy_level": 0.4,
		},
		"decisiveness": {
			"time_pressure": 0.8, "complexity_level": 0.6,
			"problem_solving_needed": 0.7, "user_intent_command": 0.5,
		},
		"boldness": {
			"novelty_level": 0.6, "creative_potential": 0.5,
			"routine_vs_special": 0.4, "anticipation_level": 0.3,
		},
	},
	StyleNurturing: {
		"agreeableness": {
			"user_intent_care": 0.9, "emotional_valence": 0.6,
			"relationship_quality": 0.7, "user_intent_social": 0.5,
		},
		"empathy": {
			"emotional_intensity": 0.8, "user_mood": 0.7,
			"creature_mood": 0.6, "user_intent_care": 0.8,
		},
		"altruism": {
			"user_intent_care": 0.8, "physical_needs": 0.6,
			"comfort_level": 0.5, "emotional_valence": 0.4,
		},
		"emotional_expressiveness": {
			"emotional_intensity": 0.6, "user_mood": 0.5,
			"relationship_quality": 0.4, "user_intent_social": 0.3,
		},
	},
	StyleCurious: {
		"curiosity": {
			"novelty_level": 0.9, "learning_opportunity": 0.8,
			"complexity_level": 0.6, "creative_potential": 0.7,
		},
		"openness": {
			"novelty_level": 0.8, "creative_potential": 0.7,
			"learning_opportunity": 0.6, "routine_vs_special": 0.5,
		},
		"curiosity_intellectual": {
			"complexity_level": 0.8, "problem_solving_needed": 0.7,
			"learning_opportunity": 0.9, "novelty_level": 0.6,
		},
		"innovativeness": {
			"creative_potential": 0.8, "novelty_level": 0.6,
			"problem_solving_needed": 0.5, "routine_vs_special": 0.4,
		},
	},
	StyleDefensive: {
		"neuroticism": {
			"safety_level": 0.7, "emotional_stability": -0.6,
			"comfort_level": 0.5, "environment_familiarity": 0.4,
		},
		"caution": {
			"safety_level": 0.9, "novelty_level": -0.5,
			"environment_familiarity": -0.4, "time_pressure": 0.3,
		},
		"independence": {
			"user_intent_social": -0.5, "relationship_quality": -0.3,
			"user_intent_command": -0.4, "safety_level": 0.4,
		},
		"trust": {
			"relationship_quality": -0.6, "safety_level": -0.4,
			"environment_familiarity": -0.3, "user_intent_social": -0.5,
		},
	},
	StyleSocial: {
		"extraversion": {
			"user_intent_social": 0.9, "relationship_quality": 0.7,
			"emotional_valence": 0.6, "user_intent_play": 0.5,
		},
		"sociability": {
			"user_intent_social": 0.9, "relationship_quality": 0.8,
			"user_intent_play": 0.6, "emotional_intensity": 0.4,
		},
		"agreeableness": {
			"relationship_quality": 0.8, "user_intent_social": 0.7,
			"emotional_valence": 0.5, "user_intent_care": 0.4,
		},
		"collaboration": {
			"user_intent_social": 0.7, "relationship_quality": 0.6,
			"problem_solving_needed": 0.5, "complexity_level": 0.4,
		},
	},
	StyleIndependent: {
		"independence": {
			"user_intent_social": -0.6, "user_intent_command": -0.4,
			"relationship_quality": -0.3, "complexity_level": 0.5,
		},
		"self_efficacy": {
			"problem_solving_needed": 0.7, "complexity_level": 0.6,
			"confidence": 0.5, "energy_level": 0.4,
		},
		"confidence": {
			"problem_solving_needed": 0.6, "energy_level": 0.5,
			"emotional_valence": 0.4, "decisiveness": 0.6,
		},
		"assertiveness": {
			"user_intent_command": 0.5, "independence": 0.4,
			"emotional_intensity": 0.3, "relationship_quality": 0.2,
		},
	},
	StyleAnalytical: {
		"systematic_thinking": {
			"problem_solving_needed": 0.9, "complexity_level": 0.8,
			"learning_opportunity": 0.6, "time_pressure": -0.3,
		},
		"conscientiousness": {
			"complexity_level": 0.7, "problem_solving_needed": 0.6,
			"time_pressure": 0.5, "detail_orientation": 0.8,
		},
		"focus": {
			"complexity_level": 0.8, "problem_solving_needed": 0.7,
			"time_pressure": 0.4, "fatigue_level": -0.5,
		},
		"reflectiveness": {
			"complexity_level": 0.6, "problem_solving_needed": 0.5,
			"time_pressure": -0.4, "learning_opportunity": 0.4,
		},
	},
	StyleEmotional: {
		"emotional_expressiveness": {
			"emotional_intensity": 0.9, "user_mood": 0.7,
			"creature_mood": 0.8, "relationship_quality": 0.5,
		},
		"empathy": {
			"emotional_intensity": 0.8, "user_mood": 0.8,
			"creature_mood": 0.7, "user_intent_care": 0.6,
		},
		"neuroticism": {
			"emotional_intensity": 0.6, "emotional_stability": -0.5,
			"comfort_level": 0.4, "safety_level": 0.3,
		},
		"self_awareness": {
			"emotional_intensity": 0.5, "creature_mood": 0.6,
			"relationship_quality": 0.4, "mindfulness": 0.7,
		},
	},
}

// applyBaseWeights overlays the grounded relationships on a noise-
// initialized matrix for one style.
func applyBaseWeights(m [][]float64, s Style) {
	for traitName, row := range baseWeights[s] {
		ti, ok := trait.Index(traitName)
		if !ok {
			continue
		}
		for key, w := range row {
			if ci, ok := contextIndex[key]; ok {
				m[ti][ci] = w
				continue
			}
			// A trait name in context position marks a trait-trait
			// relationship; spread it thinly across the row.
			if _, ok := trait.Index(key); ok {
				for c := range m[ti] {
					m[ti][c] += w * 0.1
				}
			}
		}
	}
}
