package graph

import (
	"time"

	"code.cloudfoundry.org/bam-broker/models"
)

// ServiceState is the last known state of a monitored item.
type ServiceState struct {
	Known        bool
	State        models.Status
	InDowntime   bool
	Acknowledged bool
	Metrics      map[string]float64
	Updated      time.Time
}

// StateBook holds the monitored item states the nodes compute from.
type StateBook struct {
	services map[models.ServiceKey]*ServiceState
}

func NewStateBook() *StateBook {
	return &StateBook{services: make(map[models.ServiceKey]*ServiceState)}
}

// Get returns the state of key. Items never seen are unknown.
func (b *StateBook) Get(key models.ServiceKey) ServiceState {
	if s, ok := b.services[key]; ok {
		return *s
	}
	return ServiceState{State: models.StatusUnknown}
}

func (b *StateBook) Len() int {
	return len(b.services)
}

// Apply records a raw monitoring message and returns the item it touched.
func (b *StateBook) Apply(msg models.Message) (models.ServiceKey, bool) {
	switch m := msg.(type) {
	case *models.ServiceStatus:
		s := b.entry(m.Key)
		s.State = m.State
		s.InDowntime = m.InDowntime
		s.Acknowledged = m.Acknowledged
		if m.Metrics != nil {
			s.Metrics = m.Metrics
		}
		s.Updated = m.Timestamp
		return m.Key, true
	case *models.HostStatus:
		return b.Apply(m.AsServiceStatus())
	case *models.Downtime:
		s := b.entry(m.Key)
		s.InDowntime = m.Started
		s.Updated = m.Timestamp
		return m.Key, true
	case *models.Acknowledgement:
		s := b.entry(m.Key)
		s.Acknowledged = !m.Deleted
		s.Updated = m.Timestamp
		return m.Key, true
	}
	return models.ServiceKey{}, false
}

func (b *StateBook) entry(key models.ServiceKey) *ServiceState {
	s, ok := b.services[key]
	if !ok {
		s = &ServiceState{Known: true, State: models.StatusUnknown}
		b.services[key] = s
	}
	return s
}
