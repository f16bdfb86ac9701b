package models

import (
	"time"
)

type MessageType string

const (
	ServiceStatusType   MessageType = "service_status"
	HostStatusType      MessageType = "host_status"
	DowntimeType        MessageType = "downtime"
	AcknowledgementType MessageType = "acknowledgement"

	IndicatorEventType MessageType = "indicator_event"
	ActivityEventType  MessageType = "activity_event"
	AggregateEventType MessageType = "aggregate_event"
	RebuildStartType   MessageType = "rebuild_start"
	RebuildEndType     MessageType = "rebuild_end"
)

// RawMessageTypes are the monitoring messages the computation engine consumes.
var RawMessageTypes = []MessageType{ServiceStatusType, HostStatusType, DowntimeType, AcknowledgementType}

var NodeEventTypes = []MessageType{IndicatorEventType, ActivityEventType, AggregateEventType}

// Message is anything travelling on the event bus. Payloads are shared between
// subscribers and must not be modified once published.
type Message interface {
	MessageType() MessageType
}

// NodeEvent is one interval of a node's timeline. A nil End means the event
// is still open.
type NodeEvent struct {
	Owner      NodeRef    `json:"owner"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Impact     float64    `json:"impact"`
	Status     Status     `json:"status"`
	InDowntime bool       `json:"in_downtime"`
}

func (e *NodeEvent) MessageType() MessageType {
	switch e.Owner.Kind {
	case KindIndicator:
		return IndicatorEventType
	case KindActivity:
		return ActivityEventType
	case KindAggregate:
		return AggregateEventType
	}
	return ""
}

func (e *NodeEvent) IsOpen() bool {
	return e.End == nil
}

// Closed returns a copy of the event ending at end.
func (e NodeEvent) Closed(end time.Time) *NodeEvent {
	e.End = &end
	return &e
}

// SameValue reports whether both events carry the same impact, status and
// downtime flag.
func (e *NodeEvent) SameValue(other *NodeEvent) bool {
	return e.Impact == other.Impact && e.Status == other.Status && e.InDowntime == other.InDowntime
}

type RebuildStart struct {
	Targets []NodeRef `json:"targets"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
}

func (*RebuildStart) MessageType() MessageType { return RebuildStartType }

type RebuildEnd struct {
	Targets []NodeRef `json:"targets"`
}

func (*RebuildEnd) MessageType() MessageType { return RebuildEndType }
