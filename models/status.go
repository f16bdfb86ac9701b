package models

import (
	"strconv"
	"time"
)

type HostState uint8

const (
	HostUp HostState = iota
	HostDown
	HostUnreachable
)

func (s HostState) Valid() bool {
	return s <= HostUnreachable
}

// AsStatus maps a host state onto the service state scale.
func (s HostState) AsStatus() Status {
	switch s {
	case HostUp:
		return StatusOK
	case HostDown:
		return StatusCritical
	}
	return StatusUnknown
}

const (
	LabelHostID    = "host_id"
	LabelServiceID = "service_id"
)

type ServiceStatus struct {
	Key          ServiceKey         `json:"key"`
	State        Status             `json:"state"`
	InDowntime   bool               `json:"in_downtime"`
	Acknowledged bool               `json:"acknowledged"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

func (*ServiceStatus) MessageType() MessageType { return ServiceStatusType }

func (s *ServiceStatus) GetTimestamp() int64 {
	return s.Timestamp.UnixNano()
}

func (s *ServiceStatus) HasLabels(labels map[string]string) bool {
	for k, v := range labels {
		switch k {
		case LabelHostID:
			if v != strconv.FormatUint(uint64(s.Key.HostID), 10) {
				return false
			}
		case LabelServiceID:
			if v != strconv.FormatUint(uint64(s.Key.ServiceID), 10) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

type HostStatus struct {
	HostID       uint32    `json:"host_id"`
	State        HostState `json:"state"`
	InDowntime   bool      `json:"in_downtime"`
	Acknowledged bool      `json:"acknowledged"`
	Timestamp    time.Time `json:"timestamp"`
}

func (*HostStatus) MessageType() MessageType { return HostStatusType }

// AsServiceStatus returns the host status addressed as service 0 of the host.
func (h *HostStatus) AsServiceStatus() *ServiceStatus {
	return &ServiceStatus{
		Key:          HostKey(h.HostID),
		State:        h.State.AsStatus(),
		InDowntime:   h.InDowntime,
		Acknowledged: h.Acknowledged,
		Timestamp:    h.Timestamp,
	}
}

type Downtime struct {
	Key       ServiceKey `json:"key"`
	Started   bool       `json:"started"`
	Timestamp time.Time  `json:"timestamp"`
}

func (*Downtime) MessageType() MessageType { return DowntimeType }

type Acknowledgement struct {
	Key       ServiceKey `json:"key"`
	Deleted   bool       `json:"deleted"`
	Timestamp time.Time  `json:"timestamp"`
}

func (*Acknowledgement) MessageType() MessageType { return AcknowledgementType }
