package evolution

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nidhogg/creature-mind/internal/trait"
)

// TraitChange records one significant trait movement since creation.
type TraitChange struct {
	Trait            string  `json:"trait"`
	InitialValue     float64 `json:"initial_value"`
	CurrentValue     float64 `json:"current_value"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
}

// TriggerCount pairs a trigger with how often it fired.
type TriggerCount struct {
	Trigger Trigger `json:"trigger"`
	Count   int     `json:"count"`
}

// Trajectory describes the recent direction of personality change.
type Trajectory struct {
	Trend                string  `json:"trajectory"`
	RecentChangeRate     float64 `json:"recent_change_rate"`
	HistoricalChangeRate float64 `json:"historical_change_rate"`
	Consistency          float64 `json:"evolution_consistency"`
}

// Development is the full analysis of how a personality has changed.
type Development struct {
	TotalChange        float64        `json:"total_personality_change"`
	SignificantChanges int            `json:"significant_trait_changes"`
	MostInfluenced     []TraitChange  `json:"most_influenced_traits"`
	CommonTriggers     []TriggerCount `json:"most_common_evolution_triggers"`
	Summary            string         `json:"development_summary"`
	Stability          float64        `json:"personality_stability"`
	Trajectory         Trajectory     `json:"evolution_trajectory"`
}

// AnalyzeDevelopment compares the current personality to its initial
// state and summarizes how the shift history shaped it.
func (e *Engine) AnalyzeDevelopment(initial, current trait.Vector, history []Shift, now time.Time) Development {
	var sumSq float64
	changes := []TraitChange{}
	for i := 0; i < trait.Dim; i++ {
		diff := current[i] - initial[i]
		sumSq += diff * diff
		if math.Abs(diff) > 0.05 {
			base := initial[i]
			if base < 0.01 {
				base = 0.01
			}
			changes = append(changes, TraitChange{
				Trait:            trait.Name(i),
				InitialValue:     initial[i],
				CurrentValue:     current[i],
				Change:           diff,
				ChangePercentage: diff / base * 100,
			})
		}
	}

	counts := map[Trigger]int{}
	for i := range history {
		counts[history[i].Trigger]++
	}

	sorted := make([]TraitChange, len(changes))
	copy(sorted, changes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].Change) > math.Abs(sorted[j].Change)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	triggers := make([]TriggerCount, 0, len(counts))
	for t, c := range counts {
		triggers = append(triggers, TriggerCount{Trigger: t, Count: c})
	}
	sort.SliceStable(triggers, func(i, j int) bool {
		if triggers[i].Count != triggers[j].Count {
			return triggers[i].Count > triggers[j].Count
		}
		return triggers[i].Trigger < triggers[j].Trigger
	})
	if len(triggers) > 3 {
		triggers = triggers[:3]
	}

	return Development{
		TotalChange:        math.Sqrt(sumSq),
		SignificantChanges: len(changes),
		MostInfluenced:     sorted,
		CommonTriggers:     triggers,
		Summary:            developmentSummary(changes, triggers),
		Stability:          stabilityScore(history, now),
		Trajectory:         analyzeTrajectory(history, now),
	}
}

func developmentSummary(changes []TraitChange, triggers []TriggerCount) string {
	if len(changes) == 0 {
		return "Personality has remained stable with minimal changes."
	}

	var increased, decreased []string
	for _, c := range changes {
		if c.Change > 0 {
			increased = append(increased, c.Trait)
		} else {
			decreased = append(decreased, c.Trait)
		}
	}

	var parts []string
	if len(increased) > 0 {
		if len(increased) > 3 {
			increased = increased[:3]
		}
		parts = append(parts, "Developed stronger "+strings.Join(increased, ", "))
	}
	if len(decreased) > 0 {
		if len(decreased) > 3 {
			decreased = decreased[:3]
		}
		parts = append(parts, "Became less "+strings.Join(decreased, ", "))
	}
	if len(triggers) > 0 {
		parts = append(parts, fmt.Sprintf("Most influenced by %s",
			strings.ReplaceAll(string(triggers[0].Trigger), "_", " ")))
	}
	return strings.Join(parts, ". ") + "."
}

// stabilityScore maps total active shift influence onto [0,1], where
// an undisturbed personality scores 1.
func stabilityScore(history []Shift, now time.Time) float64 {
	if len(history) == 0 {
		return 1.0
	}
	var total float64
	for i := range history {
		total += history[i].Influence(now)
	}
	frac := total / 10.0
	if frac > 1.0 {
		frac = 1.0
	}
	return 1.0 - frac
}

func analyzeTrajectory(history []Shift, now time.Time) Trajectory {
	if len(history) < 2 {
		return Trajectory{Trend: "insufficient_data", Consistency: 1.0}
	}

	var recentSum, olderSum float64
	var recentN, olderN int
	cutoff := now.Add(-7 * 24 * time.Hour)
	for i := range history {
		if history[i].Timestamp.After(cutoff) {
			recentSum += history[i].Magnitude
			recentN++
		} else {
			olderSum += history[i].Magnitude
			olderN++
		}
	}
	recent := recentSum / float64(max(recentN, 1))
	older := olderSum / float64(max(olderN, 1))

	trend := "steady_evolution"
	switch {
	case recent > older*1.2:
		trend = "accelerating_change"
	case recent < older*0.8:
		trend = "stabilizing"
	}

	return Trajectory{
		Trend:                trend,
		RecentChangeRate:     recent,
		HistoricalChangeRate: older,
		Consistency:          consistency(history),
	}
}

// consistency penalizes high variance in shift magnitudes.
func consistency(history []Shift) float64 {
	if len(history) < 3 {
		return 1.0
	}
	var mean float64
	for i := range history {
		mean += history[i].Magnitude
	}
	mean /= float64(len(history))

	var variance float64
	for i := range history {
		d := history[i].Magnitude - mean
		variance += d * d
	}
	variance /= float64(len(history))

	c := 1.0 - variance*10.0
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
