package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/bam-broker/helpers/handlers"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

type Publisher interface {
	Publish(msg models.Message)
}

// Envelope carries one monitoring message. Payload is decoded according to
// Type.
type Envelope struct {
	Type    models.MessageType `json:"type"`
	Payload json.RawMessage    `json:"payload"`
}

func (e Envelope) Decode() (models.Message, error) {
	var msg models.Message
	switch e.Type {
	case models.ServiceStatusType:
		msg = &models.ServiceStatus{}
	case models.HostStatusType:
		msg = &models.HostStatus{}
	case models.DowntimeType:
		msg = &models.Downtime{}
	case models.AcknowledgementType:
		msg = &models.Acknowledgement{}
	default:
		return nil, fmt.Errorf("unsupported message type %q", e.Type)
	}
	if err := json.Unmarshal(e.Payload, msg); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", e.Type, err)
	}
	if err := validate(msg); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", e.Type, err)
	}
	return msg, nil
}

// validate rejects the numeric states json accepts but no monitor produces.
func validate(msg models.Message) error {
	switch m := msg.(type) {
	case *models.ServiceStatus:
		if !m.State.Valid() {
			return fmt.Errorf("unknown service state %d", uint8(m.State))
		}
	case *models.HostStatus:
		if !m.State.Valid() {
			return fmt.Errorf("unknown host state %d", uint8(m.State))
		}
	}
	return nil
}

type IngestHandler struct {
	logger    lager.Logger
	publisher Publisher
}

func NewIngestHandler(logger lager.Logger, publisher Publisher) *IngestHandler {
	return &IngestHandler{
		logger:    logger.Session("ingest-handler"),
		publisher: publisher,
	}
}

// PublishMessages decodes the whole batch before publishing any of it, so a
// rejected batch leaves the bus untouched.
func (h *IngestHandler) PublishMessages(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var envelopes []Envelope
	if err := json.NewDecoder(r.Body).Decode(&envelopes); err != nil {
		h.logger.Info("failed-to-decode", lager.Data{"error": err.Error()})
		handlers.WriteError(w, http.StatusBadRequest, "Error unmarshaling messages request body")
		return
	}

	msgs := make([]models.Message, 0, len(envelopes))
	for i, e := range envelopes {
		msg, err := e.Decode()
		if err != nil {
			h.logger.Info("invalid-message", lager.Data{"index": i, "error": err.Error()})
			handlers.WriteError(w, http.StatusBadRequest, fmt.Sprintf("message %d: %s", i, err))
			return
		}
		msgs = append(msgs, msg)
	}

	for _, msg := range msgs {
		h.publisher.Publish(msg)
	}
	h.logger.Debug("published", lager.Data{"count": len(msgs)})
	w.WriteHeader(http.StatusAccepted)
}
