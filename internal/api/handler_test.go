package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/creature"
	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/store"
)

// newTestHandler creates a Handler wired with in-memory deps only
// (no Postgres, no Redis).
func newTestHandler(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	logger := zap.NewNop()
	rng := rand.New(rand.NewSource(42))

	registry := creature.NewRegistry(logger)
	model := decision.NewModel(rng)

	h := NewHandler(registry, nil, nil, model, "mood", 0.001, rng, logger)
	return h, h.Router()
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func getJSON(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func deleteReq(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("DELETE", ts.URL+path, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	return resp
}

func createTestCreature(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := postJSON(t, ts, "/api/creatures", map[string]interface{}{
		"name":        "Rex",
		"template_id": "base_mammal",
		"archetype":   "leonardo",
	})
	if resp.StatusCode != 201 {
		t.Fatalf("create creature: expected 201, got %d", resp.StatusCode)
	}
	var created map[string]interface{}
	decodeJSON(t, resp, &created)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("expected non-empty creature ID")
	}
	return id
}

// --- Tests ---

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()

	resp := getJSON(t, ts, "/api/health")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	decodeJSON(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
	if body["service"] != "creature-mind" {
		t.Errorf("expected service creature-mind, got %q", body["service"])
	}
}

func TestTemplatesAndArchetypes(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()

	resp := getJSON(t, ts, "/api/templates")
	if resp.StatusCode != 200 {
		t.Fatalf("templates: expected 200, got %d", resp.StatusCode)
	}
	var templates []map[string]interface{}
	decodeJSON(t, resp, &templates)
	if len(templates) != 3 {
		t.Errorf("expected 3 base templates, got %d", len(templates))
	}

	resp = getJSON(t, ts, "/api/archetypes")
	if resp.StatusCode != 200 {
		t.Fatalf("archetypes: expected 200, got %d", resp.StatusCode)
	}
	var archetypes []map[string]interface{}
	decodeJSON(t, resp, &archetypes)
	if len(archetypes) == 0 {
		t.Error("expected at least one archetype")
	}
}

func TestCreatureCRUD(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()

	// List — empty
	resp := getJSON(t, ts, "/api/creatures")
	if resp.StatusCode != 200 {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var creatures []interface{}
	decodeJSON(t, resp, &creatures)
	if len(creatures) != 0 {
		t.Errorf("expected 0 creatures, got %d", len(creatures))
	}

	id := createTestCreature(t, ts)

	// Get
	resp = getJSON(t, ts, "/api/creatures/"+id)
	if resp.StatusCode != 200 {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	var got map[string]interface{}
	decodeJSON(t, resp, &got)
	if got["name"] != "Rex" {
		t.Errorf("expected name Rex, got %v", got["name"])
	}
	if got["species"] != "mammal" {
		t.Errorf("expected species mammal, got %v", got["species"])
	}

	// Get — bad id
	resp = getJSON(t, ts, "/api/creatures/not-a-uuid")
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for bad id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Get — missing
	resp = getJSON(t, ts, "/api/creatures/00000000-0000-0000-0000-000000000000")
	if resp.StatusCode != 404 {
		t.Errorf("expected 404 for missing creature, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Validation — missing name
	resp = postJSON(t, ts, "/api/creatures", map[string]string{"template_id": "base_mammal"})
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for missing name, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Validation — unknown template
	resp = postJSON(t, ts, "/api/creatures", map[string]string{"name": "X", "template_id": "base_kraken"})
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for unknown template, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Delete
	resp = deleteReq(t, ts, "/api/creatures/"+id)
	if resp.StatusCode != 200 {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
	resp = deleteReq(t, ts, "/api/creatures/"+id)
	if resp.StatusCode != 404 {
		t.Errorf("expected 404 deleting twice, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestInteract(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()
	id := createTestCreature(t, ts)

	resp := postJSON(t, ts, "/api/creatures/"+id+"/interact", map[string]interface{}{
		"message":         "good boy, let's play!",
		"tone":            "friendly",
		"intent":          "play",
		"primary_emotion": "happy",
		"impact_score":    0.5,
	})
	if resp.StatusCode != 200 {
		t.Fatalf("interact: expected 200, got %d", resp.StatusCode)
	}
	var result map[string]interface{}
	decodeJSON(t, resp, &result)
	if s, _ := result["action_style"].(string); s == "" {
		t.Error("expected a selected action style")
	}
	if result["evolution_trigger"] != "positive_interaction" {
		t.Errorf("expected trigger positive_interaction, got %v", result["evolution_trigger"])
	}
	if result["can_translate"] != true {
		t.Errorf("expected can_translate true, got %v", result["can_translate"])
	}

	// The interaction should have left shifts and an emotional state.
	resp = getJSON(t, ts, "/api/creatures/"+id+"/personality")
	if resp.StatusCode != 200 {
		t.Fatalf("personality: expected 200, got %d", resp.StatusCode)
	}
	var p map[string]interface{}
	decodeJSON(t, resp, &p)
	if p["active_shifts"].(float64) == 0 {
		t.Error("expected active shifts after interaction")
	}
	if p["emotional_state"] == nil {
		t.Error("expected an emotional state after interaction")
	}
	dominant, _ := p["dominant_traits"].([]interface{})
	if len(dominant) != 5 {
		t.Errorf("expected 5 dominant traits, got %d", len(dominant))
	}
}

func TestPerformActivity(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()
	id := createTestCreature(t, ts)

	resp := postJSON(t, ts, "/api/creatures/"+id+"/activity", map[string]string{"activity": "feed"})
	if resp.StatusCode != 200 {
		t.Fatalf("activity: expected 200, got %d", resp.StatusCode)
	}
	var result map[string]interface{}
	decodeJSON(t, resp, &result)
	if result["evolution_trigger"] != "achievement" {
		t.Errorf("expected trigger achievement, got %v", result["evolution_trigger"])
	}

	resp = postJSON(t, ts, "/api/creatures/"+id+"/activity", map[string]string{"activity": "juggle"})
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for unknown activity, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/creatures/"+id+"/activity", map[string]string{})
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for missing activity, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAnalysisEndpoints(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()
	id := createTestCreature(t, ts)

	resp := getJSON(t, ts, "/api/creatures/"+id+"/tendencies")
	if resp.StatusCode != 200 {
		t.Fatalf("tendencies: expected 200, got %d", resp.StatusCode)
	}
	var tendencies map[string]interface{}
	decodeJSON(t, resp, &tendencies)
	if s, _ := tendencies["personality_summary"].(string); s == "" {
		t.Error("expected a personality summary")
	}

	resp = getJSON(t, ts, "/api/creatures/"+id+"/development")
	if resp.StatusCode != 200 {
		t.Fatalf("development: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = getJSON(t, ts, "/api/creatures/"+id+"/learning")
	if resp.StatusCode != 200 {
		t.Fatalf("learning: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHistory(t *testing.T) {
	logger := zap.NewNop()
	rng := rand.New(rand.NewSource(42))
	mr := miniredis.RunT(t)
	history, err := store.NewHistory("redis://"+mr.Addr(), 50, logger)
	if err != nil {
		t.Fatalf("NewHistory: %v", err)
	}
	defer history.Close()

	h := NewHandler(creature.NewRegistry(logger), nil, history, decision.NewModel(rng), "mood", 0.001, rng, logger)
	ts := httptest.NewServer(h.Router())
	defer ts.Close()
	id := createTestCreature(t, ts)

	resp := postJSON(t, ts, "/api/creatures/"+id+"/interact", map[string]interface{}{
		"message":         "hello there",
		"primary_emotion": "happy",
		"impact_score":    0.4,
	})
	if resp.StatusCode != 200 {
		t.Fatalf("interact: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = getJSON(t, ts, "/api/creatures/"+id+"/history")
	if resp.StatusCode != 200 {
		t.Fatalf("history: expected 200, got %d", resp.StatusCode)
	}
	var records []map[string]interface{}
	decodeJSON(t, resp, &records)
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	if records[0]["input"] != "hello there" {
		t.Errorf("expected recorded input, got %v", records[0]["input"])
	}
}

func TestHistoryUnavailable(t *testing.T) {
	_, router := newTestHandler(t)
	ts := httptest.NewServer(router)
	defer ts.Close()
	id := createTestCreature(t, ts)

	resp := getJSON(t, ts, "/api/creatures/"+id+"/history")
	if resp.StatusCode != 503 {
		t.Errorf("expected 503 without history store, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
