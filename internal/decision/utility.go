package decision

import (
	"math"
	"math/rand"
	"sort"

	"github.com/nidhogg/creature-mind/internal/trait"
)

// DefaultTemperature balances exploitation of the highest-utility
// style against variety across repeated decisions.
const DefaultTemperature = 0.4

// Model scores interaction styles from a personality and a situation.
// Utility is the bilinear form trait' * W * context + bias per style.
type Model struct {
	Weights     map[Style][][]float64 `json:"weights"`
	Biases      map[Style]float64     `json:"biases"`
	Styles      map[Style]StyleInfo   `json:"action_styles"`
	Temperature float64               `json:"temperature"`
	TraitDim    int                   `json:"trait_dim"`
	ContextDim  int                   `json:"context_dim"`
}

// NewModel builds a model with the grounded weight tables overlaid on
// small gaussian noise. The rng seeds the noise; pass a fixed-seed
// source for reproducible matrices.
func NewModel(rng *rand.Rand) *Model {
	m := &Model{
		Weights:     make(map[Style][][]float64, len(Styles)),
		Biases:      make(map[Style]float64, len(Styles)),
		Styles:      styleMetadata(),
		Temperature: DefaultTemperature,
		TraitDim:    trait.Dim,
		ContextDim:  ContextDim,
	}
	for _, s := range Styles {
		w := make([][]float64, trait.Dim)
		for i := range w {
			w[i] = make([]float64, ContextDim)
			for j := range w[i] {
				w[i][j] = rng.NormFloat64() * 0.05
			}
		}
		applyBaseWeights(w, s)
		m.Weights[s] = w
		m.Biases[s] = baseBiases[s]
	}
	return m
}

// Guidance returns the style metadata the model was loaded with. A
// style absent from the artifact falls back to the built-in table.
func (m *Model) Guidance(s Style) StyleInfo {
	if info, ok := m.Styles[s]; ok {
		return info
	}
	return Guidance(s)
}

// Utilities computes the per-style utility scores for one decision.
func (m *Model) Utilities(tv trait.Vector, cv ContextVector) map[Style]float64 {
	out := make(map[Style]float64, len(Styles))
	for _, s := range Styles {
		w := m.Weights[s]
		var u float64
		for i := 0; i < trait.Dim && i < len(w); i++ {
			row := w[i]
			var dot float64
			for j := 0; j < ContextDim && j < len(row); j++ {
				dot += row[j] * cv[j]
			}
			u += tv[i] * dot
		}
		out[s] = u + m.Biases[s]
	}
	return out
}

// Select samples a style from the softmax over utilities at the given
// temperature. Zero or negative temperature falls back to the model's
// own. When every utility is identical the distribution is degenerate
// and a style is drawn uniformly.
func (m *Model) Select(utilities map[Style]float64, temperature float64, rng *rand.Rand) Style {
	if temperature <= 0 {
		temperature = m.Temperature
	}

	values := make([]float64, len(Styles))
	for i, s := range Styles {
		values[i] = utilities[s]
	}

	allEqual := true
	for _, v := range values[1:] {
		if v != values[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return Styles[rng.Intn(len(Styles))]
	}

	maxV := values[0]
	for _, v := range values[1:] {
		if v > maxV {
			maxV = v
		}
	}

	probs := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		probs[i] = math.Exp((v - maxV) / temperature)
		sum += probs[i]
	}

	r := rng.Float64() * sum
	var acc float64
	for i, p := range probs {
		acc += p
		if r < acc {
			return Styles[i]
		}
	}
	return Styles[len(Styles)-1]
}

// StyleScore pairs a style with its utility for sorted reporting.
type StyleScore struct {
	Style   Style   `json:"style"`
	Utility float64 `json:"utility"`
}

// Tendencies describes which styles a personality gravitates toward
// absent any situational pull.
type Tendencies struct {
	Top          []StyleScore      `json:"top_action_styles"`
	Bottom       []StyleScore      `json:"bottom_action_styles"`
	Distribution map[Style]float64 `json:"utility_distribution"`
	Summary      string            `json:"personality_summary"`
}

// AnalyzeTendencies scores the personality against a neutral,
// L2-normalized context and reports the leading and trailing styles.
func (m *Model) AnalyzeTendencies(tv trait.Vector) Tendencies {
	var cv ContextVector
	norm := math.Sqrt(float64(ContextDim) * 0.25)
	for i := range cv {
		cv[i] = 0.5 / norm
	}

	utilities := m.Utilities(tv, cv)
	scores := make([]StyleScore, 0, len(Styles))
	for _, s := range Styles {
		scores = append(scores, StyleScore{Style: s, Utility: utilities[s]})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Utility > scores[j].Utility })

	return Tendencies{
		Top:          scores[:3],
		Bottom:       scores[len(scores)-2:],
		Distribution: utilities,
		Summary:      summarize(scores[:3]),
	}
}

var summaryTemplates = []struct {
	styles  []Style
	summary string
}{
	{[]Style{StylePlayful, StyleSocial, StyleCurious},
		"A vibrant, outgoing personality that loves exploration and social interaction"},
	{[]Style{StyleAnalytical, StyleCautious, StyleIndependent},
		"A thoughtful, methodical personality that prefers careful analysis and self-reliance"},
	{[]Style{StyleNurturing, StyleEmotional, StyleSocial},
		"A caring, empathetic personality focused on helping others and building relationships"},
	{[]Style{StyleAssertive, StyleIndependent, StyleAnalytical},
		"A strong, self-assured personality that takes charge and acts decisively"},
	{[]Style{StyleCurious, StyleAnalytical, StyleIndependent},
		"An intellectually driven personality that seeks understanding through systematic exploration"},
}

func summarize(top []StyleScore) string {
	present := make(map[Style]bool, len(top))
	for _, sc := range top {
		present[sc.Style] = true
	}
	for _, tpl := range summaryTemplates {
		var overlap int
		for _, s := range tpl.styles {
			if present[s] {
				overlap++
			}
		}
		if overlap >= 2 {
			return tpl.summary
		}
	}
	if len(top) > 0 {
		return "A personality with strong " + string(top[0].Style) + " tendencies and varied behavioral responses"
	}
	return "A personality with balanced tendencies and varied behavioral responses"
}
