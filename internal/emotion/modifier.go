package emotion

import (
	"fmt"

	"github.com/nidhogg/creature-mind/internal/trait"
)

const (
	// IntensityThreshold is the minimum intensity before an emotion
	// influences trait expression at all.
	IntensityThreshold = 0.1

	// maxInfluence scales every influence weight; it bounds how far a
	// single emotion can push a trait away from its stored value.
	maxInfluence = 0.3
)

// influences maps each recognized emotion to the traits it colors and
// the direction of the push. Names that fall outside the trait table
// are skipped at application time.
var influences = map[string]map[string]float64{
	"happy": {
		"extraversion": 0.4, "optimism": 0.6, "sociability": 0.5,
		"enthusiasm": 0.7, "confidence": 0.3, "agreeableness": 0.4,
		"emotional_expressiveness": 0.5, "neuroticism": -0.3,
	},
	"sad": {
		"extraversion": -0.5, "optimism": -0.7, "sociability": -0.4,
		"enthusiasm": -0.6, "confidence": -0.4, "neuroticism": 0.4,
		"empathy": 0.3, "reflectiveness": 0.4,
	},
	"angry": {
		"agreeableness": -0.6, "assertiveness": 0.7, "neuroticism": 0.5,
		"emotional_expressiveness": 0.6, "patience": -0.8, "tolerance": -0.5,
		"risk_taking": 0.4, "competitiveness": 0.5,
	},
	"anxious": {
		"neuroticism": 0.8, "caution": 0.7, "confidence": -0.5,
		"risk_taking": -0.6, "emotional_stability": -0.6,
		"independence": -0.3, "trust": -0.4, "social_anxiety": 0.6,
	},
	"excited": {
		"enthusiasm": 0.8, "extraversion": 0.6, "energy": 0.7,
		"optimism": 0.5, "risk_taking": 0.4, "sociability": 0.6,
		"spontaneity": 0.7, "patience": -0.4,
	},
	"calm": {
		"emotional_stability": 0.6, "patience": 0.5, "neuroticism": -0.5,
		"reflectiveness": 0.4, "focus": 0.3, "self_control": 0.4,
		"mindfulness": 0.6,
	},
	"fearful": {
		"caution": 0.8, "neuroticism": 0.6, "risk_taking": -0.7,
		"confidence": -0.5, "independence": -0.4, "trust": -0.3,
		"boldness": -0.6,
	},
	"curious": {
		"curiosity": 0.7, "openness": 0.6, "innovativeness": 0.5,
		"intellectual_curiosity": 0.8, "exploration": 0.6, "focus": 0.4,
	},
	"content": {
		"emotional_stability": 0.5, "optimism": 0.4, "patience": 0.4,
		"agreeableness": 0.3, "neuroticism": -0.4, "satisfaction": 0.6,
	},
	"frustrated": {
		"patience": -0.7, "neuroticism": 0.5, "agreeableness": -0.4,
		"emotional_stability": -0.5, "perseverance": -0.3, "assertiveness": 0.4,
	},
	"lonely": {
		"sociability": -0.5, "extraversion": -0.4, "neuroticism": 0.4,
		"empathy": 0.3, "independence": -0.6, "emotional_expressiveness": -0.3,
	},
	"proud": {
		"confidence": 0.6, "self_efficacy": 0.5, "humility": -0.4,
		"assertiveness": 0.4, "optimism": 0.4, "ambition": 0.3,
	},
}

// Apply overlays the emotional state on a base personality and returns
// the colored vector. The base vector is never mutated. A nil or
// below-threshold state returns the base unchanged.
func Apply(base trait.Vector, s *State) trait.Vector {
	if !s.Active() {
		return base
	}

	out := base
	if m, ok := influences[s.PrimaryEmotion]; ok {
		durationMod := 1.0 + (s.DurationHours/24.0)*0.5
		if durationMod > 2.0 {
			durationMod = 2.0
		}
		for name, w := range m {
			idx, ok := trait.Index(name)
			if !ok {
				continue
			}
			strength := w * s.Intensity * maxInfluence
			if s.Valence != 0 {
				strength *= 1.0 + s.Valence*0.5
			}
			strength *= durationMod
			out[idx] = clamp01(out[idx] + strength)
		}
	}

	// Secondary emotions contribute at half strength without the
	// valence or duration scaling.
	for _, sec := range s.SecondaryEmotions {
		m, ok := influences[sec]
		if !ok {
			continue
		}
		for name, w := range m {
			idx, ok := trait.Index(name)
			if !ok {
				continue
			}
			out[idx] = clamp01(out[idx] + w*s.Intensity*maxInfluence*0.5)
		}
	}
	return out
}

// Summary reports how far the emotional coloring moved the expressed
// personality from its stored base.
type Summary struct {
	PrimaryEmotion     string             `json:"primary_emotion"`
	Intensity          float64            `json:"emotion_intensity"`
	TraitChanges       map[string]float64 `json:"trait_changes"`
	SignificantChanges []string           `json:"significant_changes"`
	InfluencePattern   string             `json:"influence_pattern"`
	PersonalityShift   bool               `json:"temporary_personality_shift"`
	Dominance          float64            `json:"emotional_dominance"`
}

// Summarize compares the base and colored vectors and describes the
// changes above the 0.05 significance threshold.
func Summarize(base, colored trait.Vector, s *State) Summary {
	sum := Summary{
		TraitChanges:       map[string]float64{},
		SignificantChanges: []string{},
	}
	if s != nil {
		sum.PrimaryEmotion = s.PrimaryEmotion
		sum.Intensity = s.Intensity
	}
	if sum.PrimaryEmotion == "" {
		sum.PrimaryEmotion = "neutral"
	}

	var increases, decreases int
	for i := 0; i < trait.Dim; i++ {
		change := colored[i] - base[i]
		if change > 0.05 || change < -0.05 {
			name := trait.Name(i)
			sum.TraitChanges[name] = change
			if change > 0 {
				increases++
				sum.SignificantChanges = append(sum.SignificantChanges,
					fmt.Sprintf("%s increased by %.2f", name, change))
			} else {
				decreases++
				sum.SignificantChanges = append(sum.SignificantChanges,
					fmt.Sprintf("%s decreased by %.2f", name, -change))
			}
		}
	}

	sum.PersonalityShift = len(sum.SignificantChanges) > 0
	sum.InfluencePattern = pattern(increases, decreases, sum.PrimaryEmotion, sum.Intensity)
	if n := len(sum.TraitChanges); n > 0 {
		var total float64
		for _, c := range sum.TraitChanges {
			if c < 0 {
				c = -c
			}
			total += c
		}
		sum.Dominance = total / float64(n)
		if sum.Dominance > 1.0 {
			sum.Dominance = 1.0
		}
	}
	return sum
}

func pattern(increases, decreases int, primary string, intensity float64) string {
	switch {
	case increases == 0 && decreases == 0:
		return "stable"
	case intensity > 0.8:
		return "strong_" + primary + "_influence"
	case increases > decreases*2:
		return "enhancing_" + primary + "_pattern"
	case decreases > increases*2:
		return "suppressing_" + primary + "_pattern"
	default:
		return "mixed_" + primary + "_influence"
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
