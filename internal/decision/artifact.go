package decision

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/trait"
)

// SaveModel writes the model's weights, biases, style metadata and
// temperature as an indented JSON artifact.
func SaveModel(path string, m *Model) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	return nil
}

// LoadModel reads a previously saved artifact. A missing or corrupt
// artifact is not fatal: the built-in model is returned instead so a
// fresh deployment can always make decisions.
func LoadModel(path string, rng *rand.Rand, log *zap.Logger) *Model {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("failed to read model artifact, using built-in weights",
				zap.String("path", path), zap.Error(err))
		}
		return NewModel(rng)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		log.Warn("failed to parse model artifact, using built-in weights",
			zap.String("path", path), zap.Error(err))
		return NewModel(rng)
	}
	if m.Temperature <= 0 {
		m.Temperature = DefaultTemperature
	}
	if m.TraitDim == 0 {
		m.TraitDim = trait.Dim
	}
	if m.ContextDim == 0 {
		m.ContextDim = ContextDim
	}
	for _, s := range Styles {
		if _, ok := m.Weights[s]; !ok {
			log.Warn("model artifact missing style, using built-in weights",
				zap.String("path", path), zap.String("style", string(s)))
			return NewModel(rng)
		}
	}
	// Older artifacts predate the style-metadata table.
	if len(m.Styles) == 0 {
		m.Styles = styleMetadata()
	}
	return &m
}
