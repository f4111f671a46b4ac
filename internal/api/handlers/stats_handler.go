package handlers

import (
	"net/http"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/usecase"
)

type StatsHandler struct {
	statsService *usecase.StatsService
}

func NewStatsHandler(statsService *usecase.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	overview, err := h.statsService.Overview(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *StatsHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	counts, err := h.statsService.ByStatus(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if counts == nil {
		counts = []entity.StatusCount{}
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *StatsHandler) ByPriority(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	counts, err := h.statsService.ByPriority(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if counts == nil {
		counts = []entity.PriorityCount{}
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *StatsHandler) ByLabel(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	counts, err := h.statsService.ByLabel(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if counts == nil {
		counts = []entity.LabelCount{}
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *StatsHandler) WeeklyTrend(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	trend, err := h.statsService.WeeklyTrend(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if trend == nil {
		trend = []entity.DailyCount{}
	}

	writeJSON(w, http.StatusOK, trend)
}
