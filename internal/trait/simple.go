package trait

import "strings"

// simpleTraitMap projects short trait words onto the full vector.
// Words not listed here are ignored.
var simpleTraitMap = map[string]map[string]float64{
	"playful":     {"curiosity": 0.8, "extraversion": 0.7, "openness": 0.7},
	"loyal":       {"agreeableness": 0.9, "conscientiousness": 0.8},
	"energetic":   {"extraversion": 0.9, "neuroticism": 0.3},
	"calm":        {"neuroticism": 0.2, "emotional_stability": 0.9},
	"curious":     {"curiosity": 0.9, "openness": 0.8},
	"creative":    {"creativity": 0.9, "openness": 0.8},
	"friendly":    {"agreeableness": 0.8, "extraversion": 0.7},
	"independent": {"extraversion": 0.3, "conscientiousness": 0.7},
	"intelligent": {"curiosity": 0.8, "creativity": 0.7},
	"protective":  {"agreeableness": 0.6, "conscientiousness": 0.8},
	"gentle":      {"agreeableness": 0.9, "neuroticism": 0.2},
	"brave":       {"neuroticism": 0.2, "resilience": 0.9},
	"wise":        {"openness": 0.8, "conscientiousness": 0.7},
	"mischievous": {"openness": 0.7, "agreeableness": 0.4},
}

// FromSimpleTraits maps a short list of trait words onto a full vector.
// Every dimension starts at the 0.5 midpoint; listed words override the
// traits they name. Later words win on conflict.
func FromSimpleTraits(words []string) Vector {
	v := Neutral()
	for _, word := range words {
		overrides, ok := simpleTraitMap[strings.ToLower(strings.TrimSpace(word))]
		if !ok {
			continue
		}
		for name, val := range overrides {
			v = v.With(name, val)
		}
	}
	return v
}
