package api

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/creature"
	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/store"
	"github.com/nidhogg/creature-mind/internal/trait"
)

// Handler holds dependencies for HTTP handlers. The database and
// history stores are optional; without them the service runs purely
// in memory.
type Handler struct {
	registry *creature.Registry
	db       *store.Store
	history  *store.History
	model    *decision.Model
	logger   *zap.Logger

	policyKind  string
	temperature float64
	rng         *rand.Rand

	mindMu sync.Mutex
	minds  map[string]*creature.Mind

	now func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(
	registry *creature.Registry,
	db *store.Store,
	history *store.History,
	model *decision.Model,
	policyKind string,
	temperature float64,
	rng *rand.Rand,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		registry:    registry,
		db:          db,
		history:     history,
		model:       model,
		policyKind:  policyKind,
		temperature: temperature,
		rng:         rng,
		logger:      logger,
		minds:       make(map[string]*creature.Mind),
		now:         time.Now,
	}
}

// Router builds the chi router with all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Get("/templates", h.listTemplates)
		r.Get("/archetypes", h.listArchetypes)

		r.Get("/creatures", h.listCreatures)
		r.Post("/creatures", h.createCreature)
		r.Get("/creatures/{id}", h.getCreature)
		r.Delete("/creatures/{id}", h.deleteCreature)

		r.Post("/creatures/{id}/interact", h.interact)
		r.Post("/creatures/{id}/activity", h.performActivity)

		r.Get("/creatures/{id}/personality", h.getPersonality)
		r.Get("/creatures/{id}/tendencies", h.getTendencies)
		r.Get("/creatures/{id}/development", h.getDevelopment)
		r.Get("/creatures/{id}/learning", h.getLearning)
		r.Get("/creatures/{id}/history", h.getHistory)
	})

	return r
}

// mindFor returns the shared mind for a creature's template, building
// it on first use.
func (h *Handler) mindFor(c *creature.Creature) (*creature.Mind, error) {
	h.mindMu.Lock()
	defer h.mindMu.Unlock()

	if m, ok := h.minds[c.TemplateID]; ok {
		return m, nil
	}
	tpl, ok := creature.LookupTemplate(c.TemplateID)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", c.TemplateID)
	}
	policy, err := creature.PolicyFor(h.policyKind, tpl)
	if err != nil {
		return nil, fmt.Errorf("build translation policy: %w", err)
	}
	m := creature.NewMind(h.model, tpl, policy, h.temperature, h.rng, h.logger)
	h.minds[c.TemplateID] = m
	return m, nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "creature-mind"})
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates := make([]*creature.Template, 0, len(creature.BaseTemplates))
	for _, t := range creature.BaseTemplates {
		templates = append(templates, t)
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *Handler) listArchetypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, trait.ListArchetypes())
}

func (h *Handler) listCreatures(w http.ResponseWriter, r *http.Request) {
	creatures := h.registry.List()
	out := make([]json.RawMessage, 0, len(creatures))
	for _, c := range creatures {
		out = append(out, creatureJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

type createCreatureRequest struct {
	Name         string   `json:"name"`
	TemplateID   string   `json:"template_id"`
	Archetype    string   `json:"archetype,omitempty"`
	SimpleTraits []string `json:"simple_traits,omitempty"`
}

func (h *Handler) createCreature(w http.ResponseWriter, r *http.Request) {
	var req createCreatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.TemplateID == "" {
		req.TemplateID = "base_mammal"
	}
	tpl, ok := creature.LookupTemplate(req.TemplateID)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown template " + req.TemplateID})
		return
	}

	c := creature.New(req.Name, tpl, req.Archetype, req.SimpleTraits, h.now())
	h.registry.Register(c)
	h.persist(r, c)
	writeJSON(w, http.StatusCreated, creatureJSON(c))
}

func (h *Handler) getCreature(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, creatureJSON(c))
}

func (h *Handler) deleteCreature(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid creature id"})
		return
	}
	if !h.registry.Remove(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "creature not found"})
		return
	}
	if h.db != nil {
		if err := h.db.DeleteCreature(r.Context(), id); err != nil {
			h.logger.Warn("delete creature from store", zap.Error(err))
		}
	}
	if h.history != nil {
		if err := h.history.Clear(r.Context(), id); err != nil {
			h.logger.Warn("clear creature history", zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type interactRequest struct {
	Message        string            `json:"message"`
	Tone           string            `json:"tone,omitempty"`
	Intent         string            `json:"intent,omitempty"`
	PrimaryEmotion string            `json:"primary_emotion,omitempty"`
	Secondary      []string          `json:"secondary_emotions,omitempty"`
	ImpactScore    float64           `json:"impact_score"`
	Relationship   string            `json:"relationship,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

func (h *Handler) interact(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req interactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	in := creature.Interaction{
		Perception: decision.PerceptionResult{
			Tone:          req.Tone,
			Intent:        req.Intent,
			IntentDetails: req.Message,
		},
		Emotion: decision.EmotionResult{
			PrimaryEmotion:    req.PrimaryEmotion,
			SecondaryEmotions: req.Secondary,
			ImpactScore:       req.ImpactScore,
		},
		Memory: decision.MemoryResult{
			Relationship: req.Relationship,
		},
		Context: req.Context,
	}
	result := m.Process(c, in, h.now())

	h.persist(r, c)
	h.record(r, &store.InteractionRecord{
		CreatureID: c.ID,
		Input:      req.Message,
		Style:      string(result.Style),
		Trigger:    string(result.Trigger),
		Mood:       result.Mood,
		Sound:      result.Sound,
		Impact:     req.ImpactScore,
		Timestamp:  h.now(),
	})
	writeJSON(w, http.StatusOK, result)
}

type activityRequest struct {
	Activity string `json:"activity"`
}

func (h *Handler) performActivity(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.Activity == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "activity is required"})
		return
	}

	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	result, err := m.ProcessActivity(c, req.Activity, h.now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.persist(r, c)
	h.record(r, &store.InteractionRecord{
		CreatureID: c.ID,
		Activity:   req.Activity,
		Style:      string(result.Style),
		Trigger:    string(result.Trigger),
		Mood:       result.Mood,
		Sound:      result.Sound,
		Timestamp:  h.now(),
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getPersonality(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	expressed := m.ExpressedTraits(c)

	c.RLock()
	resp := map[string]interface{}{
		"archetype":       c.Personality.Archetype,
		"simple_traits":   c.Personality.SimpleTraits,
		"base_traits":     c.Personality.Base,
		"dominant_traits": c.Personality.Base.Dominant(5),
		"expressed":       expressed,
		"active_shifts":   len(c.Personality.Shifts),
		"emotional_state": c.Personality.EmotionalState,
	}
	c.RUnlock()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getTendencies(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m.Tendencies(c))
}

func (h *Handler) getDevelopment(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m.Development(c, h.now()))
}

func (h *Handler) getLearning(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	m, err := h.mindFor(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m.LearningSummary(c, h.now()))
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if h.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "history not available"})
		return
	}
	records, err := h.history.Recent(r.Context(), c.ID, 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*creature.Creature, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid creature id"})
		return nil, false
	}
	c, ok := h.registry.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "creature not found"})
		return nil, false
	}
	return c, true
}

func (h *Handler) persist(r *http.Request, c *creature.Creature) {
	if h.db == nil {
		return
	}
	c.RLock()
	err := h.db.SaveCreature(r.Context(), c)
	c.RUnlock()
	if err != nil {
		h.logger.Warn("persist creature", zap.String("id", c.ID.String()), zap.Error(err))
	}
}

func (h *Handler) record(r *http.Request, rec *store.InteractionRecord) {
	if h.history == nil {
		return
	}
	if err := h.history.Append(r.Context(), rec); err != nil {
		h.logger.Warn("record interaction", zap.Error(err))
	}
}

// creatureJSON marshals a creature under its read lock so the snapshot
// cannot race the heartbeat or a concurrent interaction.
func creatureJSON(c *creature.Creature) json.RawMessage {
	c.RLock()
	defer c.RUnlock()
	b, err := json.Marshal(c)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
