package models

import (
	"fmt"
	"strings"
)

type NodeKind uint8

const (
	KindPredicate NodeKind = iota
	KindIndicator
	KindActivity
	KindAggregate
)

var nodeKindNames = map[NodeKind]string{
	KindPredicate: "predicate",
	KindIndicator: "indicator",
	KindActivity:  "activity",
	KindAggregate: "aggregate",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NodeKind) UnmarshalText(text []byte) error {
	for kind, name := range nodeKindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown node kind %q", string(text))
}

// NodeRef identifies a node of the computation graph. Ids are only unique
// within a kind.
type NodeRef struct {
	Kind NodeKind `json:"kind"`
	ID   uint32   `json:"id"`
}

func (r NodeRef) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// Less orders refs by kind first, then id.
func (r NodeRef) Less(other NodeRef) bool {
	if r.Kind != other.Kind {
		return r.Kind < other.Kind
	}
	return r.ID < other.ID
}

func PredicateRef(id uint32) NodeRef { return NodeRef{Kind: KindPredicate, ID: id} }
func IndicatorRef(id uint32) NodeRef { return NodeRef{Kind: KindIndicator, ID: id} }
func ActivityRef(id uint32) NodeRef  { return NodeRef{Kind: KindActivity, ID: id} }
func AggregateRef(id uint32) NodeRef { return NodeRef{Kind: KindAggregate, ID: id} }

type Status uint8

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

var statusNames = map[Status]string{
	StatusOK:       "ok",
	StatusWarning:  "warning",
	StatusCritical: "critical",
	StatusUnknown:  "unknown",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

// Severity ranks statuses so that critical is the worst and unknown sits
// between warning and critical.
func (s Status) Severity() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusUnknown:
		return 2
	case StatusCritical:
		return 3
	}
	return 2
}

func WorstStatus(a, b Status) Status {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// ServiceKey addresses a monitored item. ServiceID 0 is the host itself.
type ServiceKey struct {
	HostID    uint32 `json:"host_id" yaml:"host_id"`
	ServiceID uint32 `json:"service_id" yaml:"service_id"`
}

func (k ServiceKey) IsHost() bool {
	return k.ServiceID == 0
}

func (k ServiceKey) String() string {
	return fmt.Sprintf("%d:%d", k.HostID, k.ServiceID)
}

func (k ServiceKey) Less(other ServiceKey) bool {
	if k.HostID != other.HostID {
		return k.HostID < other.HostID
	}
	return k.ServiceID < other.ServiceID
}

func HostKey(hostID uint32) ServiceKey {
	return ServiceKey{HostID: hostID}
}
