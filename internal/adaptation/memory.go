// Package adaptation lets a creature learn from interaction outcomes
// and fold those learnings back into decisions and personality.
package adaptation

import "time"

// LearningType classifies what kind of pattern was learned.
type LearningType string

const (
	LearningBehavioralPattern  LearningType = "behavioral_pattern"
	LearningUserPreference     LearningType = "user_preference"
	LearningInteractionOutcome LearningType = "interaction_outcome"
	LearningEmotionalPattern   LearningType = "emotional_pattern"
	LearningContextualResponse LearningType = "contextual_response"
	LearningSkillDevelopment   LearningType = "skill_development"
	LearningSocialDynamics     LearningType = "social_dynamics"
)

// staleAfterDays is how long a learning goes unreinforced before its
// strength starts decaying.
const staleAfterDays = 30

// Response is what a learning concluded: the behavior or association
// worth repeating (or avoiding).
type Response struct {
	ActionStyle    string `json:"action_style,omitempty"`
	UserIntent     string `json:"user_intent,omitempty"`
	ResultingState string `json:"resulting_state,omitempty"`
	Success        bool   `json:"success"`
}

// Memory is one learned pattern. Trigger holds the conditions that
// activate it; matching is key-by-key with case-insensitive fallback.
type Memory struct {
	ID             string            `json:"pattern_id"`
	Type           LearningType      `json:"learning_type"`
	Description    string            `json:"description"`
	Trigger        map[string]string `json:"trigger_conditions"`
	Response       Response          `json:"learned_response"`
	Confidence     float64           `json:"confidence_score"`
	Reinforcements int               `json:"reinforcement_count"`
	SuccessRate    float64           `json:"success_rate"`
	LastReinforced time.Time         `json:"last_reinforced"`
	CreatedAt      time.Time         `json:"created_at"`
	Tags           []string          `json:"context_tags,omitempty"`
}

// Reinforce records a new outcome for this pattern, moving confidence
// and the running success rate.
func (m *Memory) Reinforce(success bool, strength float64, now time.Time) {
	m.Reinforcements++
	m.LastReinforced = now

	if success {
		m.Confidence = clamp01(m.Confidence + 0.1*strength)
		m.SuccessRate = (m.SuccessRate*float64(m.Reinforcements-1) + 1.0) / float64(m.Reinforcements)
	} else {
		m.Confidence = clamp01(m.Confidence - 0.05*strength)
		m.SuccessRate = (m.SuccessRate * float64(m.Reinforcements-1)) / float64(m.Reinforcements)
	}
}

// Stale reports whether the learning has gone unreinforced too long.
func (m *Memory) Stale(now time.Time) bool {
	return now.Sub(m.LastReinforced) > staleAfterDays*24*time.Hour
}

// Strength combines confidence and reinforcement history, discounted
// for staleness. It decays toward a 0.1 floor over roughly a year.
func (m *Memory) Strength(now time.Time) float64 {
	reinforcement := float64(m.Reinforcements) / 10.0
	if reinforcement > 1.0 {
		reinforcement = 1.0
	}
	strength := (m.Confidence + reinforcement) / 2.0

	if m.Stale(now) {
		daysStale := now.Sub(m.LastReinforced).Hours() / 24.0
		decay := 1.0 - (daysStale-staleAfterDays)/365.0
		if decay < 0.1 {
			decay = 0.1
		}
		strength *= decay
	}
	return strength
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
