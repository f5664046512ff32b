package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/models"
	"github.com/Nosdarm/rpg-sub000/internal/services"
)

// GenerationHandler exposes the gateway command operations over HTTP.
type GenerationHandler struct {
	service services.GenerationService
	log     *zap.Logger
}

func NewGenerationHandler(service services.GenerationService, log *zap.Logger) *GenerationHandler {
	return &GenerationHandler{service: service, log: log}
}

// HandleTrigger handles POST /api/guilds/{guildID}/generations
// @Summary Trigger a new generation
// @Description Submit a request to generate candidate content for review
// @Tags generations
// @Accept json
// @Produce json
// @Success 201 {object} models.PendingGeneration
// @Failure 400 {string} string "Validation error"
// @Router /guilds/{guildID}/generations [post]
func (h *GenerationHandler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	guildID := mux.Vars(r)["guildID"]

	var req models.TriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.service.Trigger(r.Context(), guildID, &req)
	if err != nil {
		h.writeError(w, "trigger", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(g)
}

// HandleList handles GET /api/guilds/{guildID}/generations
// @Summary List pending generations
// @Description Retrieve a filtered, paginated view of pending generation records
// @Tags generations
// @Produce json
// @Param status query string false "Filter by moderation status"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} models.PendingGenerationPage
// @Router /guilds/{guildID}/generations [get]
func (h *GenerationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	guildID := mux.Vars(r)["guildID"]

	q := r.URL.Query()
	status := models.GenerationStatus(q.Get("status"))
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	result, err := h.service.List(r.Context(), guildID, status, page, pageSize)
	if err != nil {
		h.writeError(w, "list", err)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// HandleGet handles GET /api/guilds/{guildID}/generations/{id}
// @Summary Get one pending generation
// @Tags generations
// @Produce json
// @Success 200 {object} models.PendingGeneration
// @Failure 404 {string} string "Not found"
// @Router /guilds/{guildID}/generations/{id} [get]
func (h *GenerationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	g, err := h.service.GetByID(r.Context(), vars["guildID"], vars["id"])
	if err != nil {
		h.writeError(w, "get", err)
		return
	}
	json.NewEncoder(w).Encode(g)
}

// HandleApprove handles POST /api/guilds/{guildID}/generations/{id}/approve
// @Summary Approve a pending generation
// @Description Persist the reviewed content; the persistence outcome decides SAVED or ERROR_ON_SAVE
// @Tags generations
// @Accept json
// @Produce json
// @Success 200 {object} models.PendingGeneration
// @Failure 409 {string} string "Not approvable in current status"
// @Router /guilds/{guildID}/generations/{id}/approve [post]
func (h *GenerationHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	var req models.ApproveRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	g, err := h.service.Approve(r.Context(), vars["guildID"], vars["id"], req.MasterID)
	if err != nil {
		h.writeError(w, "approve", err)
		return
	}
	json.NewEncoder(w).Encode(g)
}

// HandleUpdate handles PUT /api/guilds/{guildID}/generations/{id}
// @Summary Update a pending generation
// @Description Update notes and/or parsed data; the resulting status is derived server-side
// @Tags generations
// @Accept json
// @Produce json
// @Success 200 {object} models.PendingGeneration
// @Failure 400 {string} string "Validation error"
// @Router /guilds/{guildID}/generations/{id} [put]
func (h *GenerationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	var req models.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.service.Update(r.Context(), vars["guildID"], vars["id"], &req)
	if err != nil {
		h.writeError(w, "update", err)
		return
	}
	json.NewEncoder(w).Encode(g)
}

func (h *GenerationHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotApprovable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		if ve, ok := apperrors.AsValidation(err); ok {
			http.Error(w, ve.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error("generation operation failed", zap.String("op", op), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
