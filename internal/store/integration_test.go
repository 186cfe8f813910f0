//go:build e2e

package store

import (
	"context"
	"testing"
	"time"

	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/creature"
)

// startPostgres starts a PostgreSQL testcontainer, returns DSN + cleanup func.
func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tcpg.Run(ctx, "postgres:16-alpine",
		tcpg.WithDatabase("creature_test"),
		tcpg.WithUsername("test"),
		tcpg.WithPassword("test"),
		tcpg.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("pg connection string: %v", err)
	}
	return dsn
}

// startRedis starts a Redis testcontainer, returns URL + cleanup func.
func startRedis(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("redis endpoint: %v", err)
	}
	return "redis://" + endpoint
}

func TestCreatureRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgres(ctx, t)

	s, err := New(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()
	if err := s.Migrate(ctx, "../../migrations"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tpl := creature.BaseTemplates["base_mammal"]
	c := creature.New("Rex", tpl, "leonardo", nil, now)
	c.Stats.Set("happiness", 62)

	if err := s.SaveCreature(ctx, c); err != nil {
		t.Fatalf("SaveCreature: %v", err)
	}

	got, err := s.GetCreature(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCreature: %v", err)
	}
	if got.Name != "Rex" || got.Species != "mammal" {
		t.Errorf("got name=%q species=%q", got.Name, got.Species)
	}
	if got.Personality.Base != c.Personality.Base {
		t.Error("personality traits did not round-trip")
	}
	if v := got.Stats.Get("happiness"); v != 62 {
		t.Errorf("happiness = %v, want 62", v)
	}

	// Upsert with changed state
	c.Stats.Set("happiness", 80)
	if err := s.SaveCreature(ctx, c); err != nil {
		t.Fatalf("SaveCreature upsert: %v", err)
	}
	list, err := s.ListCreatures(ctx)
	if err != nil {
		t.Fatalf("ListCreatures: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 creature after upsert, got %d", len(list))
	}
	if v := list[0].Stats.Get("happiness"); v != 80 {
		t.Errorf("upserted happiness = %v, want 80", v)
	}

	if err := s.DeleteCreature(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCreature: %v", err)
	}
	if _, err := s.GetCreature(ctx, c.ID); err == nil {
		t.Error("expected error getting deleted creature")
	}
}

func TestHistoryAgainstRealRedis(t *testing.T) {
	ctx := context.Background()
	url := startRedis(ctx, t)

	h, err := NewHistory(url, 5, zap.NewNop())
	if err != nil {
		t.Fatalf("NewHistory: %v", err)
	}
	defer h.Close()

	c := creature.New("Rex", creature.BaseTemplates["base_mammal"], "", nil, time.Now())
	for i := 0; i < 8; i++ {
		if err := h.Append(ctx, &InteractionRecord{CreatureID: c.ID, Style: "playful", Impact: float64(i)}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := h.Recent(ctx, c.ID, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records after trim, got %d", len(records))
	}
	if records[0].Impact != 3 {
		t.Errorf("oldest kept impact = %v, want 3", records[0].Impact)
	}
}
