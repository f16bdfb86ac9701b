package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/rebuild"
	"code.cloudfoundry.org/bam-broker/helpers/handlers"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

type RebuildRequester interface {
	Request(ctx context.Context, targets []models.NodeRef, from time.Time) error
}

// RebuildRequest replays the timelines of the listed activities and
// aggregates from Start, a unix time, up to now.
type RebuildRequest struct {
	ActivityIDs  []uint32 `json:"activity_ids"`
	AggregateIDs []uint32 `json:"aggregate_ids"`
	Start        int64    `json:"start"`
}

func (r RebuildRequest) Targets() []models.NodeRef {
	targets := make([]models.NodeRef, 0, len(r.ActivityIDs)+len(r.AggregateIDs))
	for _, id := range r.ActivityIDs {
		targets = append(targets, models.ActivityRef(id))
	}
	for _, id := range r.AggregateIDs {
		targets = append(targets, models.AggregateRef(id))
	}
	return targets
}

type RebuildResponse struct {
	Targets []models.NodeRef `json:"targets"`
	Start   time.Time        `json:"start"`
}

type RebuildHandler struct {
	logger    lager.Logger
	requester RebuildRequester
}

func NewRebuildHandler(logger lager.Logger, requester RebuildRequester) *RebuildHandler {
	return &RebuildHandler{
		logger:    logger.Session("rebuild-handler"),
		requester: requester,
	}
}

func (h *RebuildHandler) Rebuild(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req RebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Info("failed-to-decode", lager.Data{"error": err.Error()})
		handlers.WriteError(w, http.StatusBadRequest, "Incorrect rebuild request in request body")
		return
	}

	targets := req.Targets()
	from := time.Unix(req.Start, 0).UTC()
	logger := h.logger.Session("rebuild", lager.Data{"targets": targets, "from": from})

	err := h.requester.Request(r.Context(), targets, from)
	switch {
	case err == nil:
		logger.Info("accepted")
		handlers.WriteJSONResponse(w, http.StatusAccepted, RebuildResponse{Targets: targets, Start: from})
	case errors.Is(err, rebuild.ErrNoTargets), errors.Is(err, rebuild.ErrInvalidWindow):
		logger.Info("rejected", lager.Data{"error": err.Error()})
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, rebuild.ErrBusy):
		logger.Info("busy")
		handlers.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("failed-to-request-rebuild", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Error fetching the status history")
	}
}
