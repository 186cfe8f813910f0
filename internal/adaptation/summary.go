package adaptation

import (
	"sort"
	"time"
)

// LearningHighlight is one notable learning in a summary.
type LearningHighlight struct {
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	Strength    float64 `json:"strength,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Reinforced  int     `json:"reinforcements,omitempty"`
	SuccessRate float64 `json:"success_rate,omitempty"`
}

// Stats aggregates learning health across all memories.
type Stats struct {
	TotalReinforcements int     `json:"total_reinforcements"`
	AverageConfidence   float64 `json:"average_confidence"`
	LearningVelocity    float64 `json:"learning_velocity"`
	StaleLearnings      int     `json:"stale_learnings"`
}

// Trends describes the direction and quality of recent learning.
type Trends struct {
	Trend                   string `json:"trend"`
	Quality                 string `json:"learning_quality,omitempty"`
	HighConfidenceLearnings int    `json:"high_confidence_learnings"`
	Diversity               int    `json:"learning_diversity"`
}

// Summary is the full picture of what a creature has learned.
type Summary struct {
	TotalLearnings int                 `json:"total_learnings"`
	ByType         map[string]int      `json:"learning_by_type,omitempty"`
	Strongest      []LearningHighlight `json:"strongest_learnings,omitempty"`
	MostReinforced []LearningHighlight `json:"most_reinforced,omitempty"`
	Statistics     *Stats              `json:"learning_statistics,omitempty"`
	Trends         *Trends             `json:"learning_trends,omitempty"`
	Message        string              `json:"message,omitempty"`
}

// Summarize reports what the creature has learned so far.
func (e *Engine) Summarize(learnings []*Memory, now time.Time) Summary {
	if len(learnings) == 0 {
		return Summary{Message: "No significant learnings yet"}
	}

	byType := map[string]int{}
	var totalReinforcements, stale int
	var confidenceSum float64
	for _, m := range learnings {
		byType[string(m.Type)]++
		totalReinforcements += m.Reinforcements
		confidenceSum += m.Confidence
		if m.Stale(now) {
			stale++
		}
	}

	byStrength := append([]*Memory(nil), learnings...)
	sort.SliceStable(byStrength, func(i, j int) bool {
		return byStrength[i].Strength(now) > byStrength[j].Strength(now)
	})
	var strongest []LearningHighlight
	for _, m := range byStrength[:min(5, len(byStrength))] {
		strongest = append(strongest, LearningHighlight{
			Description: m.Description,
			Type:        string(m.Type),
			Strength:    m.Strength(now),
			Confidence:  m.Confidence,
		})
	}

	byReinforced := append([]*Memory(nil), learnings...)
	sort.SliceStable(byReinforced, func(i, j int) bool {
		return byReinforced[i].Reinforcements > byReinforced[j].Reinforcements
	})
	var mostReinforced []LearningHighlight
	for _, m := range byReinforced[:min(3, len(byReinforced))] {
		mostReinforced = append(mostReinforced, LearningHighlight{
			Description: m.Description,
			Reinforced:  m.Reinforcements,
			SuccessRate: m.SuccessRate,
		})
	}

	var recent int
	for _, m := range learnings {
		if now.Sub(m.CreatedAt) <= 7*24*time.Hour {
			recent++
		}
	}

	return Summary{
		TotalLearnings: len(learnings),
		ByType:         byType,
		Strongest:      strongest,
		MostReinforced: mostReinforced,
		Statistics: &Stats{
			TotalReinforcements: totalReinforcements,
			AverageConfidence:   confidenceSum / float64(len(learnings)),
			LearningVelocity:    float64(recent) / float64(len(learnings)),
			StaleLearnings:      stale,
		},
		Trends: analyzeTrends(learnings, now),
	}
}

func analyzeTrends(learnings []*Memory, now time.Time) *Trends {
	var recent, older []*Memory
	for _, m := range learnings {
		if now.Sub(m.CreatedAt) <= 7*24*time.Hour {
			recent = append(recent, m)
		} else {
			older = append(older, m)
		}
	}

	trend := "new_learner"
	if len(older) > 0 {
		oldest := older[0].CreatedAt
		for _, m := range older[1:] {
			if m.CreatedAt.Before(oldest) {
				oldest = m.CreatedAt
			}
		}
		historicalDays := now.Sub(oldest).Hours() / 24.0
		if historicalDays < 1 {
			historicalDays = 1
		}
		recentRate := float64(len(recent)) / 7.0
		historicalRate := float64(len(older)) / historicalDays

		switch {
		case recentRate > historicalRate*1.5:
			trend = "accelerating_learning"
		case recentRate < historicalRate*0.5:
			trend = "slowing_learning"
		default:
			trend = "steady_learning"
		}
	}

	var confidenceSum float64
	var highConfidence int
	types := map[LearningType]bool{}
	for _, m := range learnings {
		confidenceSum += m.Confidence
		if m.Confidence > 0.8 {
			highConfidence++
		}
		types[m.Type] = true
	}
	avg := confidenceSum / float64(len(learnings))

	quality := "low"
	switch {
	case avg > 0.7:
		quality = "high"
	case avg > 0.4:
		quality = "medium"
	}

	return &Trends{
		Trend:                   trend,
		Quality:                 quality,
		HighConfidenceLearnings: highConfidence,
		Diversity:               len(types),
	}
}
