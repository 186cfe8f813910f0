package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nidhogg/creature-mind/internal/creature"
)

// SaveCreature upserts a creature. The personality and stat block are
// stored as JSONB so evolving trait state round-trips without schema
// churn.
func (s *Store) SaveCreature(ctx context.Context, c *creature.Creature) error {
	personality, err := json.Marshal(c.Personality)
	if err != nil {
		return fmt.Errorf("marshal personality: %w", err)
	}
	stats, err := json.Marshal(c.Stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO creatures (id, name, species, template_id, personality, stats, created_at, last_interaction, last_stats_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			species = EXCLUDED.species,
			template_id = EXCLUDED.template_id,
			personality = EXCLUDED.personality,
			stats = EXCLUDED.stats,
			last_interaction = EXCLUDED.last_interaction,
			last_stats_update = EXCLUDED.last_stats_update`,
		c.ID, c.Name, c.Species, c.TemplateID, personality, stats,
		c.CreatedAt, c.LastInteraction, c.LastStatsUpdate,
	)
	if err != nil {
		return fmt.Errorf("save creature %s: %w", c.ID, err)
	}
	return nil
}

// GetCreature retrieves a single creature by ID.
func (s *Store) GetCreature(ctx context.Context, id uuid.UUID) (*creature.Creature, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, species, template_id, personality, stats, created_at, last_interaction, last_stats_update
		FROM creatures WHERE id = $1`, id)

	c, err := scanCreature(row)
	if err != nil {
		return nil, fmt.Errorf("get creature %s: %w", id, err)
	}
	return c, nil
}

// ListCreatures returns all stored creatures ordered by creation time.
func (s *Store) ListCreatures(ctx context.Context) ([]*creature.Creature, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, species, template_id, personality, stats, created_at, last_interaction, last_stats_update
		FROM creatures ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list creatures: %w", err)
	}
	defer rows.Close()

	var creatures []*creature.Creature
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creature: %w", err)
		}
		creatures = append(creatures, c)
	}
	return creatures, nil
}

// DeleteCreature removes a creature and its stored state.
func (s *Store) DeleteCreature(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Exec(ctx, `DELETE FROM creatures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete creature %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCreature(row rowScanner) (*creature.Creature, error) {
	var c creature.Creature
	var personality, stats []byte

	if err := row.Scan(
		&c.ID, &c.Name, &c.Species, &c.TemplateID, &personality, &stats,
		&c.CreatedAt, &c.LastInteraction, &c.LastStatsUpdate,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(personality, &c.Personality); err != nil {
		return nil, fmt.Errorf("unmarshal personality: %w", err)
	}
	if err := json.Unmarshal(stats, &c.Stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	return &c, nil
}
