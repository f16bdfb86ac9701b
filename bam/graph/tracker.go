package graph

import (
	"time"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

type TrackerState int

const (
	Bootstrap TrackerState = iota
	Open
)

func (s TrackerState) String() string {
	if s == Open {
		return "open"
	}
	return "bootstrap"
}

// EventTracker turns the successive results of a node into a gap-free
// sequence of events. It holds at most one open event.
type EventTracker struct {
	owner  models.NodeRef
	logger lager.Logger
	open   *models.NodeEvent
}

func NewEventTracker(logger lager.Logger, owner models.NodeRef) *EventTracker {
	return &EventTracker{
		owner:  owner,
		logger: logger.Session("event-tracker", lager.Data{"owner": owner.String()}),
	}
}

func (t *EventTracker) Owner() models.NodeRef {
	return t.owner
}

func (t *EventTracker) State() TrackerState {
	if t.open == nil {
		return Bootstrap
	}
	return Open
}

// Current returns a copy of the open event, or nil in bootstrap.
func (t *EventTracker) Current() *models.NodeEvent {
	if t.open == nil {
		return nil
	}
	ev := *t.open
	return &ev
}

// Update records r at time at and returns the events to emit.
func (t *EventTracker) Update(r Result, at time.Time) []*models.NodeEvent {
	next := &models.NodeEvent{
		Owner:      t.owner,
		Start:      at,
		Impact:     r.Impact,
		Status:     r.Status,
		InDowntime: r.InDowntime,
	}

	if t.open == nil {
		t.open = next
		return []*models.NodeEvent{t.Current()}
	}
	if t.open.SameValue(next) {
		return nil
	}

	closed := t.closeAt(at)
	next.Start = *closed.End
	t.open = next
	return []*models.NodeEvent{closed, t.Current()}
}

// Close ends the open event at time at and returns it. The tracker goes
// back to bootstrap.
func (t *EventTracker) Close(at time.Time) *models.NodeEvent {
	if t.open == nil {
		t.logger.Info("close-without-open-event", lager.Data{"error": models.ErrNoOpenEvent.Error()})
		return nil
	}
	closed := t.closeAt(at)
	t.open = nil
	return closed
}

// Discard drops the open event without emitting anything.
func (t *EventTracker) Discard() {
	t.open = nil
}

// Adopt takes over an open event produced elsewhere, typically by a rebuild.
func (t *EventTracker) Adopt(ev *models.NodeEvent) {
	if ev == nil || !ev.IsOpen() {
		return
	}
	if t.open != nil {
		t.logger.Info("adopt-with-open-event", lager.Data{"error": models.ErrEventAlreadyOpen.Error()})
		return
	}
	adopted := *ev
	adopted.Owner = t.owner
	t.open = &adopted
}

func (t *EventTracker) closeAt(at time.Time) *models.NodeEvent {
	if at.Before(t.open.Start) {
		t.logger.Debug("clamp-close-time", lager.Data{"at": at, "start": t.open.Start})
		at = t.open.Start
	}
	return t.open.Closed(at)
}
