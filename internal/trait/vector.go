package trait

import "sort"

// Vector is a 50-dimensional personality representation. Every component
// is kept in [0,1]. Vector is a value type: transforms return a new
// vector and never mutate their receiver.
type Vector [Dim]float64

// Zero returns the all-zero vector.
func Zero() Vector {
	return Vector{}
}

// Neutral returns a vector with every trait at the 0.5 midpoint.
func Neutral() Vector {
	var v Vector
	for i := range v {
		v[i] = 0.5
	}
	return v
}

// New builds a vector from raw values, clamping each to [0,1].
// Short input leaves the remaining components at zero; extra values
// are dropped.
func New(values []float64) Vector {
	var v Vector
	for i := 0; i < Dim && i < len(values); i++ {
		v[i] = clamp01(values[i])
	}
	return v
}

// Get returns the value for a named trait, or 0.5 for unknown names.
func (v Vector) Get(name string) float64 {
	i, ok := Index(name)
	if !ok {
		return 0.5
	}
	return v[i]
}

// With returns a copy with the named trait set to val (clamped).
// Unknown names return the vector unchanged.
func (v Vector) With(name string, val float64) Vector {
	i, ok := Index(name)
	if !ok {
		return v
	}
	v[i] = clamp01(val)
	return v
}

// Add returns a copy with delta added to the named trait, clamped.
func (v Vector) Add(name string, delta float64) Vector {
	i, ok := Index(name)
	if !ok {
		return v
	}
	v[i] = clamp01(v[i] + delta)
	return v
}

// Clamp returns a copy with every component forced into [0,1].
func (v Vector) Clamp() Vector {
	for i := range v {
		v[i] = clamp01(v[i])
	}
	return v
}

// Slice copies the vector into a new []float64, for serialization.
func (v Vector) Slice() []float64 {
	out := make([]float64, Dim)
	copy(out, v[:])
	return out
}

// Score pairs a trait name with its current value.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Dominant returns the n highest-valued traits in descending order.
func (v Vector) Dominant(n int) []Score {
	scores := make([]Score, Dim)
	for i, val := range v {
		scores[i] = Score{Name: Definitions[i].Name, Value: val}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Value > scores[b].Value
	})
	if n > Dim {
		n = Dim
	}
	if n < 0 {
		n = 0
	}
	return scores[:n]
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
