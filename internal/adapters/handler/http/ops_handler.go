package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// OpsHandler exposes read-only operational views of the running bot:
// the command counter and per-poll summaries. There is no auth; the
// endpoint is meant for operators, not the public internet.
type OpsHandler struct {
	service ports.PollService
	counter ports.CommandCounter
}

func NewOpsHandler(service ports.PollService, counter ports.CommandCounter) *OpsHandler {
	return &OpsHandler{
		service: service,
		counter: counter,
	}
}

type pollSummaryResponse struct {
	ID      string       `json:"id"`
	Owner   domain.User  `json:"owner"`
	Options []string     `json:"options"`
	Open    bool         `json:"open"`
	Voters  int          `json:"voters"`
	Tally   domain.Tally `json:"tally"`
}

func (h *OpsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.counter.Report())
}

func (h *OpsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing poll id", http.StatusBadRequest)
		return
	}

	view, err := h.service.Snapshot(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			http.Error(w, "poll not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pollSummaryResponse{
		ID:      view.ID,
		Owner:   view.Owner,
		Options: view.Options,
		Open:    view.Open,
		Voters:  view.VoterCount(),
		Tally:   view.Tally(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
