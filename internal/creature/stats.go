package creature

// StatConfig bounds one stat and controls its idle decay.
type StatConfig struct {
	MinValue     float64 `json:"min_value"`
	MaxValue     float64 `json:"max_value"`
	DecayRate    float64 `json:"decay_rate"` // points lost per hour of inactivity
	DefaultStart float64 `json:"default_start"`
}

var defaultStatConfig = StatConfig{MinValue: 0, MaxValue: 100, DecayRate: 0.1, DefaultStart: 75}

// Stats is a configurable stat block. Reads are always clamped to the
// stat's configured bounds; unknown stats report their default.
type Stats struct {
	Values  map[string]float64    `json:"values"`
	Configs map[string]StatConfig `json:"configs"`
}

func NewStats(configs map[string]StatConfig) *Stats {
	s := &Stats{
		Values:  make(map[string]float64, len(configs)),
		Configs: make(map[string]StatConfig, len(configs)),
	}
	for name, cfg := range configs {
		s.Configs[name] = cfg
		s.Values[name] = cfg.DefaultStart
	}
	return s
}

func (s *Stats) config(name string) StatConfig {
	if cfg, ok := s.Configs[name]; ok {
		return cfg
	}
	return defaultStatConfig
}

// Get returns a stat clamped to its bounds, or the default for a stat
// never set.
func (s *Stats) Get(name string) float64 {
	cfg := s.config(name)
	v, ok := s.Values[name]
	if !ok {
		return cfg.DefaultStart
	}
	return clampStat(v, cfg)
}

// Set stores a stat value clamped to its bounds.
func (s *Stats) Set(name string, value float64) {
	if s.Values == nil {
		s.Values = map[string]float64{}
	}
	s.Values[name] = clampStat(value, s.config(name))
}

// Modify adjusts a stat by delta, clamped to its bounds.
func (s *Stats) Modify(name string, delta float64) {
	s.Set(name, s.Get(name)+delta)
}

// Snapshot returns the current clamped value of every configured stat.
func (s *Stats) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(s.Configs))
	for name := range s.Configs {
		out[name] = s.Get(name)
	}
	return out
}

// Decay applies per-stat idle decay for the given number of hours.
func (s *Stats) Decay(hours float64) {
	if hours <= 0 {
		return
	}
	for name, cfg := range s.Configs {
		if cfg.DecayRate > 0 {
			s.Set(name, s.Get(name)-cfg.DecayRate*hours)
		}
	}
}

func clampStat(v float64, cfg StatConfig) float64 {
	if v < cfg.MinValue {
		return cfg.MinValue
	}
	if v > cfg.MaxValue {
		return cfg.MaxValue
	}
	return v
}
