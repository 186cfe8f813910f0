package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const historyPrefix = "creature:history:"

// InteractionRecord is one processed interaction kept in the rolling
// per-creature history.
type InteractionRecord struct {
	CreatureID uuid.UUID `json:"creature_id"`
	Input      string    `json:"input,omitempty"`
	Activity   string    `json:"activity,omitempty"`
	Style      string    `json:"action_style"`
	Trigger    string    `json:"evolution_trigger"`
	Mood       string    `json:"mood"`
	Sound      string    `json:"sound"`
	Impact     float64   `json:"emotional_impact"`
	Timestamp  time.Time `json:"timestamp"`
}

// History keeps a bounded per-creature interaction log in Redis.
type History struct {
	rdb    *redis.Client
	limit  int
	logger *zap.Logger
}

// NewHistory connects to Redis and returns a history store. Limit caps
// how many records are kept per creature.
func NewHistory(redisURL string, limit int, logger *zap.Logger) (*History, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &History{rdb: rdb, limit: limit, logger: logger}, nil
}

// Append records an interaction and trims the log to the limit.
func (h *History) Append(ctx context.Context, rec *InteractionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := historyPrefix + rec.CreatureID.String()
	pipe := h.rdb.TxPipeline()
	pipe.RPush(ctx, key, string(data))
	pipe.LTrim(ctx, key, int64(-h.limit), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history for %s: %w", rec.CreatureID, err)
	}

	h.logger.Debug("recorded interaction",
		zap.String("creature", rec.CreatureID.String()),
		zap.String("style", rec.Style))
	return nil
}

// Recent returns up to n most recent records, oldest first.
func (h *History) Recent(ctx context.Context, creatureID uuid.UUID, n int) ([]*InteractionRecord, error) {
	if n <= 0 || n > h.limit {
		n = h.limit
	}

	key := historyPrefix + creatureID.String()
	raw, err := h.rdb.LRange(ctx, key, int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history for %s: %w", creatureID, err)
	}

	records := make([]*InteractionRecord, 0, len(raw))
	for _, item := range raw {
		var rec InteractionRecord
		if json.Unmarshal([]byte(item), &rec) == nil {
			records = append(records, &rec)
		}
	}
	return records, nil
}

// Clear drops a creature's history.
func (h *History) Clear(ctx context.Context, creatureID uuid.UUID) error {
	return h.rdb.Del(ctx, historyPrefix+creatureID.String()).Err()
}

// Close shuts down the Redis connection.
func (h *History) Close() error {
	return h.rdb.Close()
}
