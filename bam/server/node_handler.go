package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/broker"
	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/helpers/handlers"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

type StatusReader interface {
	Get(ref models.NodeRef) (broker.NodeStatus, bool)
}

var kindsByPath = map[string]models.NodeKind{
	"activities": models.KindActivity,
	"aggregates": models.KindAggregate,
	"indicators": models.KindIndicator,
}

type NodeHandler struct {
	logger   lager.Logger
	statuses StatusReader
	eventDB  db.EventDB
}

func NewNodeHandler(logger lager.Logger, statuses StatusReader, eventDB db.EventDB) *NodeHandler {
	return &NodeHandler{
		logger:   logger.Session("node-handler"),
		statuses: statuses,
		eventDB:  eventDB,
	}
}

func nodeRef(vars map[string]string) (models.NodeRef, error) {
	kind, ok := kindsByPath[vars["kind"]]
	if !ok {
		return models.NodeRef{}, fmt.Errorf("unknown node kind %q", vars["kind"])
	}
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return models.NodeRef{}, fmt.Errorf("invalid node id %q", vars["id"])
	}
	return models.NodeRef{Kind: kind, ID: uint32(id)}, nil
}

func (h *NodeHandler) GetStatus(w http.ResponseWriter, _ *http.Request, vars map[string]string) {
	ref, err := nodeRef(vars)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, ok := h.statuses.Get(ref)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, fmt.Sprintf("%s not found", ref))
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, status)
}

func (h *NodeHandler) GetEvents(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	ref, err := nodeRef(vars)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger := h.logger.Session("get-events", lager.Data{"node": ref.String()})

	query := r.URL.Query()
	start, err := unixParam(query["start"], 0)
	if err != nil {
		logger.Info("invalid-start", lager.Data{"start": query["start"]})
		handlers.WriteError(w, http.StatusBadRequest, "Error parsing start time")
		return
	}
	end, err := unixParam(query["end"], math.MaxInt32)
	if err != nil {
		logger.Info("invalid-end", lager.Data{"end": query["end"]})
		handlers.WriteError(w, http.StatusBadRequest, "Error parsing end time")
		return
	}
	order, err := orderParam(query["order"])
	if err != nil {
		logger.Info("invalid-order", lager.Data{"order": query["order"]})
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.eventDB.RetrieveEvents(r.Context(), ref, start, end, order)
	if err != nil {
		logger.Error("failed-to-retrieve-events", err, lager.Data{"start": start, "end": end})
		handlers.WriteError(w, http.StatusInternalServerError, "Error getting events from database")
		return
	}
	if events == nil {
		events = []*models.NodeEvent{}
	}
	handlers.WriteJSONResponse(w, http.StatusOK, events)
}

func unixParam(values []string, def int64) (time.Time, error) {
	switch len(values) {
	case 0:
		return time.Unix(def, 0).UTC(), nil
	case 1:
		sec, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("expected one value, got %d", len(values))
}

func orderParam(values []string) (db.OrderType, error) {
	if len(values) == 0 {
		return db.ASC, nil
	}
	switch strings.ToUpper(values[0]) {
	case db.ASC.String():
		return db.ASC, nil
	case db.DESC.String():
		return db.DESC, nil
	}
	return db.ASC, fmt.Errorf("Incorrect order parameter in query string, the value can only be 'ASC' or 'DESC'")
}
