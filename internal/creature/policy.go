package creature

import (
	"fmt"
	"strconv"
	"strings"
)

// TranslationPolicy decides whether a creature's utterances can be
// translated into human language right now.
type TranslationPolicy interface {
	CanTranslate(stats *Stats) bool
}

// MoodPolicy refuses translation only when the creature is in real
// distress, keeping it communicative in ordinary low-stat states.
type MoodPolicy struct{}

func (MoodPolicy) CanTranslate(stats *Stats) bool {
	happiness := stats.Get("happiness")
	energy := stats.Get("energy")

	if happiness < 20 && energy < 20 {
		return false
	}
	if happiness < 10 {
		return false
	}
	if energy < 5 {
		return false
	}
	return true
}

type thresholdCond struct {
	stat  string
	op    string
	value float64
}

// ThresholdPolicy evaluates per-stat conditions like "> 40" from a
// template's translation configuration. All conditions must hold.
type ThresholdPolicy struct {
	conds []thresholdCond
}

// NewThresholdPolicy parses a conditions map of stat name to
// expressions of the form "OP VALUE" where OP is one of <, <=, >, >=,
// ==. Malformed expressions are rejected.
func NewThresholdPolicy(conditions map[string]string) (*ThresholdPolicy, error) {
	p := &ThresholdPolicy{}
	for stat, expr := range conditions {
		fields := strings.Fields(expr)
		if len(fields) != 2 {
			return nil, fmt.Errorf("condition %q for stat %q: want \"OP VALUE\"", expr, stat)
		}
		op := fields[0]
		switch op {
		case "<", "<=", ">", ">=", "==":
		default:
			return nil, fmt.Errorf("condition %q for stat %q: unknown operator %q", expr, stat, op)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("condition %q for stat %q: %w", expr, stat, err)
		}
		p.conds = append(p.conds, thresholdCond{stat: stat, op: op, value: value})
	}
	return p, nil
}

func (p *ThresholdPolicy) CanTranslate(stats *Stats) bool {
	for _, c := range p.conds {
		v := stats.Get(c.stat)
		var ok bool
		switch c.op {
		case "<":
			ok = v < c.value
		case "<=":
			ok = v <= c.value
		case ">":
			ok = v > c.value
		case ">=":
			ok = v >= c.value
		case "==":
			ok = v == c.value
		}
		if !ok {
			return false
		}
	}
	return true
}

// PolicyFor builds the configured translation policy for a template.
// The "threshold" kind reads the template's conditions; anything else
// falls back to the mood policy.
func PolicyFor(kind string, tpl *Template) (TranslationPolicy, error) {
	if kind == "threshold" && len(tpl.Language.TranslationConditions) > 0 {
		return NewThresholdPolicy(tpl.Language.TranslationConditions)
	}
	return MoodPolicy{}, nil
}
