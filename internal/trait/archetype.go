package trait

import "sort"

// Archetype is a named preset personality vector.
type Archetype struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Desc   string    `json:"description"`
	Vector []float64 `json:"vector"`
}

var archetypes = map[string]Archetype{
	"leonardo": {
		ID:   "leonardo",
		Name: "Leonardo da Vinci",
		Desc: "Curious, creative, and endlessly inventive Renaissance genius",
		Vector: []float64{0.98, 0.75, 0.60, 0.70, 0.30, 0.99, 0.97, 0.80, 0.70, 0.65,
			0.50, 0.65, 0.90, 0.72, 0.55, 0.85, 0.88, 0.45, 0.85, 0.99,
			0.30, 0.55, 0.75, 0.65, 0.40, 0.96, 0.60, 0.50, 0.95, 0.50,
			0.80, 0.78, 0.90, 0.95, 0.65, 0.92, 0.85, 0.60, 0.85, 0.85,
			0.90, 0.80, 0.88, 0.75, 0.50, 0.30, 0.80, 0.50, 0.70, 0.92},
	},
	"einstein": {
		ID:   "einstein",
		Name: "Albert Einstein",
		Desc: "Deeply thoughtful, intellectually curious, and independent",
		Vector: []float64{0.95, 0.70, 0.55, 0.60, 0.25, 0.98, 0.94, 0.85, 0.65, 0.60,
			0.45, 0.60, 0.88, 0.70, 0.50, 0.80, 0.75, 0.40, 0.88, 0.98,
			0.30, 0.55, 0.65, 0.70, 0.35, 0.95, 0.58, 0.55, 0.70, 0.50,
			0.65, 0.62, 0.82, 0.90, 0.58, 0.85, 0.80, 0.60, 0.95, 0.90,
			0.88, 0.75, 0.48, 0.30, 0.78, 0.82, 0.40, 0.90, 0.55, 0.80},
	},
	"montessori": {
		ID:   "montessori",
		Name: "Maria Montessori",
		Desc: "Nurturing educator with innovative teaching methods",
		Vector: []float64{0.90, 0.80, 0.65, 0.85, 0.30, 0.85, 0.78, 0.75, 0.68, 0.88,
			0.40, 0.92, 0.82, 0.60, 0.60, 0.75, 0.95, 0.92, 0.80, 0.85,
			0.30, 0.88, 0.82, 0.95, 0.30, 0.78, 0.70, 0.85, 0.82, 0.60,
			0.75, 0.70, 0.88, 0.80, 0.55, 0.70, 0.78, 0.68, 0.92, 0.85,
			0.77, 0.85, 0.50, 0.88, 0.85, 0.65, 0.40, 0.95, 0.66, 0.88},
	},
	"socrates": {
		ID:   "socrates",
		Name: "Socrates",
		Desc: "Wise philosopher who questions everything",
		Vector: []float64{0.88, 0.65, 0.50, 0.70, 0.35, 0.92, 0.80, 0.78, 0.72, 0.55,
			0.60, 0.50, 0.75, 0.80, 0.45, 0.65, 0.60, 0.50, 0.70, 0.92,
			0.35, 0.60, 0.80, 0.75, 0.35, 0.85, 0.68, 0.55, 0.78, 0.45,
			0.70, 0.58, 0.82, 0.85, 0.60, 0.75, 0.76, 0.60, 0.88, 0.75,
			0.82, 0.70, 0.68, 0.40, 0.30, 0.78, 0.65, 0.72, 0.50, 0.78},
	},
	"rogers": {
		ID:   "rogers",
		Name: "Fred Rogers",
		Desc: "Gentle, empathetic, and endlessly kind",
		Vector: []float64{0.80, 0.75, 0.70, 0.95, 0.20, 0.82, 0.65, 0.70, 0.65, 0.95,
			0.40, 0.88, 0.70, 0.92, 0.90, 0.85, 0.98, 0.95, 0.78, 0.78,
			0.20, 0.90, 0.95, 0.98, 0.25, 0.82, 0.85, 0.88, 0.90, 0.45,
			0.80, 0.60, 0.92, 0.88, 0.50, 0.85, 0.80, 0.90, 0.80, 0.95,
			0.92, 0.75, 0.70, 0.30, 0.60, 0.88, 0.85, 0.68, 0.90, 0.92},
	},
	"yoda": {
		ID:   "yoda",
		Name: "Yoda",
		Desc: "Ancient, wise, and patient teacher",
		Vector: []float64{0.85, 0.65, 0.30, 0.95, 0.20, 0.88, 0.60, 0.85, 0.80, 0.75,
			0.60, 0.75, 0.80, 0.72, 0.50, 0.78, 0.82, 0.65, 0.75, 0.88,
			0.20, 0.60, 0.85, 0.95, 0.25, 0.88, 0.70, 0.75, 0.80, 0.45,
			0.75, 0.65, 0.88, 0.85, 0.50, 0.82, 0.78, 0.45, 0.90, 0.85,
			0.88, 0.80, 0.50, 0.30, 0.55, 0.75, 0.60, 0.88, 0.50, 0.85},
	},
}

// GetArchetype returns the preset vector for a named archetype.
func GetArchetype(id string) (Vector, bool) {
	a, ok := archetypes[id]
	if !ok {
		return Vector{}, false
	}
	return New(a.Vector), true
}

// ListArchetypes returns all archetypes sorted by ID.
func ListArchetypes() []Archetype {
	out := make([]Archetype, 0, len(archetypes))
	for _, a := range archetypes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Blend combines archetypes as a weighted average. Weights are
// normalized; unknown archetype names contribute nothing. Weights
// summing to zero yield the zero vector.
func Blend(weights map[string]float64) Vector {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return Zero()
	}

	var result Vector
	for id, w := range weights {
		a, ok := archetypes[id]
		if !ok {
			continue
		}
		frac := w / total
		for i := 0; i < Dim && i < len(a.Vector); i++ {
			result[i] += a.Vector[i] * frac
		}
	}
	return result.Clamp()
}
