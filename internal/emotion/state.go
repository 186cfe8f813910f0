// Package emotion applies transient emotional coloring to a
// personality. Influences are recomputed from the current emotional
// state on every read and are never written back to the stored traits.
package emotion

// State captures the creature's current emotional condition.
type State struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	SecondaryEmotions []string `json:"secondary_emotions,omitempty"`
	Intensity         float64  `json:"intensity"`
	Valence           float64  `json:"valence"`
	DurationHours     float64  `json:"duration_hours"`
}

// Active reports whether the state is strong enough to color behavior.
func (s *State) Active() bool {
	return s != nil && s.Intensity >= IntensityThreshold
}
