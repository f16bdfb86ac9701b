package graph

import (
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

type EventSink interface {
	Publish(msg models.Message)
}

type Stats struct {
	Messages       uint64
	Recomputations uint64
	Events         uint64
	Cycles         uint64
}

// Engine propagates monitored item changes through the registry. It is not
// safe for concurrent use; only Stats may be read from other goroutines.
type Engine struct {
	logger   lager.Logger
	registry *Registry
	book     *StateBook
	sink     EventSink

	messages       atomic.Uint64
	recomputations atomic.Uint64
	events         atomic.Uint64
	cycles         atomic.Uint64
}

func NewEngine(logger lager.Logger, registry *Registry, book *StateBook, sink EventSink) *Engine {
	return &Engine{
		logger:   logger.Session("engine"),
		registry: registry,
		book:     book,
		sink:     sink,
	}
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) StateBook() *StateBook {
	return e.book
}

func (e *Engine) Node(ref models.NodeRef) (Node, bool) {
	return e.registry.Lookup(ref)
}

func (e *Engine) Inputs(ref models.NodeRef) []models.NodeRef {
	return e.registry.Inputs(ref)
}

func (e *Engine) Service(key models.ServiceKey) ServiceState {
	return e.book.Get(key)
}

func (e *Engine) Stats() Stats {
	return Stats{
		Messages:       e.messages.Load(),
		Recomputations: e.recomputations.Load(),
		Events:         e.events.Load(),
		Cycles:         e.cycles.Load(),
	}
}

// Process records a raw monitoring message and recomputes every node that
// transitively depends on the item it concerns.
func (e *Engine) Process(msg models.Message, at time.Time) {
	key, ok := e.book.Apply(msg)
	if !ok {
		e.logger.Debug("ignore-message", lager.Data{"type": msg.MessageType()})
		return
	}
	e.messages.Add(1)

	for _, ref := range e.registry.Watchers(key) {
		e.visit(ref, nil, Result{}, at, make(map[models.NodeRef]struct{}))
	}
}

// Refresh recomputes refs and the nodes downstream of them in a single
// ordered pass, so each node is committed at most once and a node reading
// several refreshed inputs emits one event instead of one per input.
func (e *Engine) Refresh(refs []models.NodeRef, at time.Time) {
	ordered, cyclic := e.registry.order(e.registry.Downstream(refs))
	if cyclic > 0 {
		e.cycles.Add(1)
		e.logger.Info("dependency-cycle", lager.Data{"nodes": refStrings(ordered[len(ordered)-cyclic:])})
	}

	dirty := make(map[models.NodeRef]struct{}, len(refs))
	for _, ref := range refs {
		dirty[ref] = struct{}{}
	}
	for _, ref := range ordered {
		if _, ok := dirty[ref]; !ok {
			continue
		}
		n, ok := e.registry.Lookup(ref)
		if !ok {
			continue
		}
		r := n.Compute(e)
		e.recomputations.Add(1)

		changed := n.commit(r, at)
		if t := n.Tracker(); t != nil {
			e.Emit(t.Update(r, at)...)
		}
		if !changed {
			continue
		}
		for _, dep := range e.registry.Dependents(ref) {
			dirty[dep] = struct{}{}
		}
	}
}

// Emit publishes events produced outside a cascade, like the closing event
// of a removed node.
func (e *Engine) Emit(events ...*models.NodeEvent) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		e.events.Add(1)
		e.sink.Publish(ev)
	}
}

func (e *Engine) visit(ref models.NodeRef, child *models.NodeRef, childResult Result, at time.Time, visiting map[models.NodeRef]struct{}) {
	if _, ok := visiting[ref]; ok {
		e.cycles.Add(1)
		e.logger.Info("dependency-cycle", lager.Data{"node": ref.String()})
		return
	}
	n, ok := e.registry.Lookup(ref)
	if !ok {
		return
	}
	visiting[ref] = struct{}{}
	defer delete(visiting, ref)

	var r Result
	if child == nil {
		r = n.Compute(e)
	} else {
		r = n.Visit(e, *child, childResult)
	}
	e.recomputations.Add(1)

	changed := n.commit(r, at)
	if t := n.Tracker(); t != nil {
		e.Emit(t.Update(r, at)...)
	}
	if !changed {
		return
	}

	for _, dep := range e.registry.Dependents(ref) {
		e.visit(dep, &ref, r, at, visiting)
	}
}

func refStrings(refs []models.NodeRef) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.String()
	}
	return out
}
