package graph

import (
	"time"

	"code.cloudfoundry.org/bam-broker/models"
)

// Result is the value a node computed from its inputs.
type Result struct {
	Impact         float64
	Status         models.Status
	InDowntime     bool
	Acknowledged   bool
	Nominal        float64
	DowntimeImpact float64
	AckImpact      float64

	// State is the last evaluated boolean of a predicate.
	State bool
	// Value is the aggregated metric of an aggregate.
	Value float64
}

func unknownResult(impact float64) Result {
	return Result{
		Impact:  impact,
		Status:  models.StatusUnknown,
		Nominal: impact,
	}
}

// Graph is the read-only view a node computes against.
type Graph interface {
	Node(ref models.NodeRef) (Node, bool)
	Inputs(ref models.NodeRef) []models.NodeRef
	Service(key models.ServiceKey) ServiceState
}

// Link is a dependency edge declared by a node. Watch links start at a
// monitored item, the others at another node.
type Link struct {
	Watch   bool
	Service models.ServiceKey
	From    models.NodeRef
	To      models.NodeRef
}

func watchLink(key models.ServiceKey, to models.NodeRef) Link {
	return Link{Watch: true, Service: key, To: to}
}

func nodeLink(from, to models.NodeRef) Link {
	return Link{From: from, To: to}
}

type Node interface {
	Ref() models.NodeRef
	// Compute recomputes the node from the current values of its inputs. It
	// does not store the result.
	Compute(g Graph) Result
	// Visit recomputes the node after the input child changed to r.
	Visit(g Graph, child models.NodeRef, r Result) Result
	Result() Result
	LastStateChange() time.Time
	Links() []Link
	// Tracker is nil for nodes without a timeline.
	Tracker() *EventTracker
	Degraded() error
	Degrade(err error)

	commit(r Result, at time.Time) bool
	clone() Node
}

type base struct {
	ref        models.NodeRef
	result     Result
	computed   bool
	lastChange time.Time
	degraded   error
	tracker    *EventTracker
}

func newBase(ref models.NodeRef, tracker *EventTracker) base {
	return base{
		ref:     ref,
		result:  unknownResult(0),
		tracker: tracker,
	}
}

func (b *base) Ref() models.NodeRef {
	return b.ref
}

func (b *base) Result() Result {
	return b.result
}

func (b *base) LastStateChange() time.Time {
	return b.lastChange
}

func (b *base) Tracker() *EventTracker {
	return b.tracker
}

func (b *base) Degraded() error {
	return b.degraded
}

// Degrade marks the node as misconfigured; it computes an unknown state
// until Degrade(nil) is called.
func (b *base) Degrade(err error) {
	b.degraded = err
}

// commit stores r and reports whether it differs from the previous result.
// The first commit always counts as a change.
func (b *base) commit(r Result, at time.Time) bool {
	if b.computed && b.result == r {
		return false
	}
	if !b.computed || b.result.Status != r.Status {
		b.lastChange = at
	}
	b.computed = true
	b.result = r
	return true
}
