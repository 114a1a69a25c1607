package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-context-registry/internal/loader"
	"go-context-registry/internal/model"
	"go-context-registry/internal/registry"
	"go-context-registry/internal/validator"
)

// Handler serves the registry HTTP API
type Handler struct {
	Manager *registry.Manager
	Policy  validator.Policy
}

// New creates a handler around a registry manager
func New(mgr *registry.Manager, policy validator.Policy) *Handler {
	return &Handler{Manager: mgr, Policy: policy}
}

// registerRequest is the payload for POST /schemas
type registerRequest struct {
	Version   string           `json:"version"`
	Body      model.SchemaBody `json:"body"`
	Changelog string           `json:"changelog,omitempty"`
}

// rollbackRequest is the payload for POST /schemas/rollback
type rollbackRequest struct {
	Version  string `json:"version,omitempty"`
	Previous bool   `json:"previous,omitempty"`
}

// validateRequest is the payload for POST /validate
type validateRequest struct {
	Version  string                `json:"version,omitempty"` // empty = active version
	Document model.ContextDocument `json:"document"`
}

// RegisterSchema registers a new schema version
// @Summary Register a schema version
// @Description Register a new immutable schema version; the version must be strictly greater than every registered version
// @Tags schemas
// @Accept json
// @Produce json
// @Param schema body registerRequest true "Schema version to register"
// @Success 200 {object} map[string]interface{} "Schema registered"
// @Failure 400 {object} map[string]interface{} "Invalid payload or version string"
// @Failure 409 {object} map[string]interface{} "Duplicate or non-monotonic version"
// @Router /schemas [post]
func (h *Handler) RegisterSchema(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	sv, err := h.Manager.RegisterVersion(req.Version, req.Body, req.Changelog)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message":      "Schema registered successfully!",
		"version":      sv.Version,
		"registeredAt": sv.RegisteredAt,
	})
}

// ListHistory returns the full version log
// @Summary Version log history
// @Description List all registration and rollback events, oldest first
// @Tags schemas
// @Produce json
// @Success 200 {object} map[string]interface{} "Version log"
// @Router /schemas [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history := h.Manager.History()
	writeJSON(w, map[string]interface{}{
		"history": history,
		"count":   len(history),
		"active":  h.Manager.ActiveVersion(),
	})
}

// GetCurrentSchema returns the schema referenced by the active pointer
// @Summary Current schema
// @Description Resolve the schema version the active pointer references
// @Tags schemas
// @Produce json
// @Success 200 {object} model.SchemaVersion "Active schema"
// @Failure 404 {object} map[string]interface{} "No schema registered yet"
// @Router /schemas/current [get]
func (h *Handler) GetCurrentSchema(w http.ResponseWriter, r *http.Request) {
	sv, err := h.Manager.ResolveCurrent()
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	writeJSON(w, sv)
}

// GetSchema returns one schema version
// @Summary Fetch a schema version
// @Description Fetch the immutable schema document for a version
// @Tags schemas
// @Produce json
// @Param version path string true "Schema version"
// @Success 200 {object} model.SchemaVersion "Schema"
// @Failure 404 {object} map[string]interface{} "Unknown version"
// @Router /schemas/{version} [get]
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	prefix := "/api/v1/schemas/"
	version := strings.TrimPrefix(r.URL.Path, prefix)
	if version == "" || version == r.URL.Path {
		http.Error(w, "Schema version is required", http.StatusBadRequest)
		return
	}

	sv, err := h.Manager.Resolve(version)
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	writeJSON(w, sv)
}

// Rollback moves the active pointer to a prior version
// @Summary Roll back the active schema
// @Description Move the active pointer to a registered version, or to the previous one; schema content and history are never touched
// @Tags schemas
// @Accept json
// @Produce json
// @Param rollback body rollbackRequest true "Rollback target"
// @Success 200 {object} map[string]interface{} "Pointer moved"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Unknown or no previous version"
// @Router /schemas/rollback [post]
func (h *Handler) Rollback(w http.ResponseWriter, r *http.Request) {
	var req rollbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var entry model.VersionLogEntry
	var err error
	switch {
	case req.Previous && req.Version == "":
		entry, err = h.Manager.RollbackToPrevious()
	case req.Version != "" && !req.Previous:
		entry, err = h.Manager.RollbackTo(req.Version)
	default:
		http.Error(w, "Provide either a version or previous=true", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message":    "Active pointer moved",
		"active":     entry.Version,
		"rolledBack": time.Now().UTC(),
	})
}

// ValidateDocument validates a context document against a schema version
// @Summary Validate a context document
// @Description Validate a document against a schema version (the active one when unspecified); violations are a result, not an error
// @Tags validation
// @Accept json
// @Produce json
// @Param request body validateRequest true "Document and optional schema version"
// @Success 200 {object} model.ValidationResult "Validation result"
// @Failure 400 {object} map[string]interface{} "Malformed payload"
// @Failure 404 {object} map[string]interface{} "Unknown or missing schema version"
// @Router /validate [post]
func (h *Handler) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Document == nil {
		http.Error(w, "A document is required", http.StatusBadRequest)
		return
	}

	var sv model.SchemaVersion
	var err error
	if req.Version != "" {
		sv, err = h.Manager.Resolve(req.Version)
	} else {
		sv, err = h.Manager.ResolveCurrent()
	}
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, validator.Validate(req.Document, sv, h.Policy))
}

// SuggestUpgrade lists fields to add when moving between schema versions
// @Summary Upgrade suggestion
// @Description List the required fields a document must add to move from one schema version to another
// @Tags schemas
// @Produce json
// @Param from query string true "Current schema version"
// @Param to query string true "Target schema version"
// @Success 200 {object} map[string]interface{} "Required additions"
// @Failure 404 {object} map[string]interface{} "Unknown version"
// @Router /schemas/upgrade [get]
func (h *Handler) SuggestUpgrade(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "Both from and to versions are required", http.StatusBadRequest)
		return
	}

	fromSchema, err := h.Manager.Resolve(from)
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	toSchema, err := h.Manager.Resolve(to)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	additions := validator.SuggestUpgrade(fromSchema, toSchema)
	writeJSON(w, map[string]interface{}{
		"from":               from,
		"to":                 to,
		"required_additions": additions,
		"count":              len(additions),
	})
}

// GetRuleSummary renders the required/optional field matrix
// @Summary Rule summary
// @Description Render a markdown table of required/optional field coverage across all registered schema versions
// @Tags schemas
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary table"
// @Router /schemas/summary [get]
func (h *Handler) GetRuleSummary(w http.ResponseWriter, r *http.Request) {
	var versions []model.SchemaVersion
	for _, e := range h.Manager.Registrations() {
		sv, err := h.Manager.Resolve(e.Version)
		if err != nil {
			http.Error(w, "Failed to resolve registered version", http.StatusInternalServerError)
			return
		}
		versions = append(versions, sv)
	}

	writeJSON(w, map[string]interface{}{
		"versions": len(versions),
		"summary":  validator.RuleSummary(versions),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeRegistryError maps registry error kinds onto HTTP status codes
func writeRegistryError(w http.ResponseWriter, err error) {
	var decodeErr *loader.DecodeError
	switch {
	case errors.As(err, &decodeErr), errors.Is(err, registry.ErrInvalidVersion):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, registry.ErrDuplicateVersion),
		errors.Is(err, registry.ErrNonMonotonicVersion),
		errors.Is(err, registry.ErrDanglingReference):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, registry.ErrUnknownVersion),
		errors.Is(err, registry.ErrNoPreviousVersion),
		errors.Is(err, registry.ErrNoActiveVersion):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
