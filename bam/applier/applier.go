package applier

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/exp/maps"
)

// Result lists what one snapshot application did. Touched holds the live
// nodes whose inputs or configuration changed; they must be refreshed.
type Result struct {
	Created  []models.NodeRef
	Patched  []models.NodeRef
	Removed  []models.NodeRef
	Degraded []models.NodeRef
	Touched  []models.NodeRef
}

func (r Result) Changed() bool {
	return len(r.Created) > 0 || len(r.Patched) > 0 || len(r.Removed) > 0 || len(r.Touched) > 0
}

// Applier reconciles the live graph with configuration snapshots.
type Applier struct {
	logger  lager.Logger
	engine  *graph.Engine
	catalog *models.Catalog
}

func NewApplier(logger lager.Logger, engine *graph.Engine) *Applier {
	return &Applier{
		logger: logger.Session("applier"),
		engine: engine,
	}
}

type pass struct {
	result  Result
	touched map[models.NodeRef]struct{}
}

func (p *pass) touch(refs ...models.NodeRef) {
	for _, ref := range refs {
		p.touched[ref] = struct{}{}
	}
}

// Apply creates, patches and removes nodes so that the graph matches
// snapshot. Removed nodes close their open event at time at. Nothing is
// recomputed; refresh Result.Touched afterwards.
func (a *Applier) Apply(snapshot *models.ConfigurationSnapshot, at time.Time) Result {
	logger := a.logger.Session("apply-snapshot", lager.Data{"size": snapshot.Size()})
	logger.Info("start")
	defer logger.Info("end")

	catalog := snapshot.Catalog
	if catalog == nil {
		catalog = models.NewCatalog(nil)
	}
	a.catalog = catalog

	p := &pass{touched: make(map[models.NodeRef]struct{})}

	applyKind(a, p, models.KindPredicate, snapshot.Predicates, at,
		func(cfg *models.PredicateConfig) graph.Node { return graph.NewPredicate(a.logger, cfg, catalog) },
		func(n graph.Node, cfg *models.PredicateConfig) bool { return n.(*graph.Predicate).Patch(cfg, catalog) })
	applyKind(a, p, models.KindAggregate, snapshot.Aggregates, at,
		func(cfg *models.AggregateConfig) graph.Node { return graph.NewAggregate(a.logger, cfg) },
		func(n graph.Node, cfg *models.AggregateConfig) bool { return n.(*graph.Aggregate).Patch(cfg) })
	applyKind(a, p, models.KindActivity, snapshot.Activities, at,
		func(cfg *models.ActivityConfig) graph.Node { return graph.NewActivity(a.logger, cfg) },
		func(n graph.Node, cfg *models.ActivityConfig) bool { return n.(*graph.Activity).Patch(cfg) })
	applyKind(a, p, models.KindIndicator, snapshot.Indicators, at,
		func(cfg *models.IndicatorConfig) graph.Node { return graph.NewIndicator(a.logger, cfg) },
		func(n graph.Node, cfg *models.IndicatorConfig) bool { return n.(*graph.Indicator).Patch(cfg) })

	a.validate(p)

	registry := a.engine.Registry()
	for ref := range p.touched {
		if _, ok := registry.Lookup(ref); ok {
			p.result.Touched = append(p.result.Touched, ref)
		}
	}
	sortRefs(p.result.Touched)

	logger.Info("applied", lager.Data{
		"created":  len(p.result.Created),
		"patched":  len(p.result.Patched),
		"removed":  len(p.result.Removed),
		"degraded": len(p.result.Degraded),
	})
	return p.result
}

func applyKind[C any](a *Applier, p *pass, kind models.NodeKind, configs map[uint32]C, at time.Time,
	create func(C) graph.Node, patch func(graph.Node, C) bool) {
	registry := a.engine.Registry()

	for _, n := range registry.Nodes(kind) {
		if _, ok := configs[n.Ref().ID]; !ok {
			a.remove(p, n, at)
		}
	}

	ids := maps.Keys(configs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		ref := models.NodeRef{Kind: kind, ID: id}
		n, ok := registry.Lookup(ref)
		if !ok {
			n = create(configs[id])
			registry.Insert(n)
			p.result.Created = append(p.result.Created, ref)
			p.touch(ref)
			continue
		}

		before := registry.Dependents(ref)
		if !patch(n, configs[id]) {
			continue
		}
		registry.Update(n)
		p.result.Patched = append(p.result.Patched, ref)
		p.touch(ref)
		p.touch(before...)
		p.touch(registry.Dependents(ref)...)
	}
}

func (a *Applier) remove(p *pass, n graph.Node, at time.Time) {
	ref := n.Ref()
	registry := a.engine.Registry()

	if t := n.Tracker(); t != nil && t.State() == graph.Open {
		a.engine.Emit(t.Close(at))
	}
	p.touch(registry.Dependents(ref)...)
	registry.Remove(ref)
	p.result.Removed = append(p.result.Removed, ref)
	a.logger.Info("removed-node", lager.Data{"node": ref.String()})
}

// validate degrades nodes whose references cannot be resolved or that sit
// on a dependency cycle, and restores the ones that recovered. Predicates
// validate their own expression when configured.
func (a *Applier) validate(p *pass) {
	registry := a.engine.Registry()
	cyclic := a.cycles()

	for _, kind := range []models.NodeKind{models.KindPredicate, models.KindAggregate, models.KindActivity, models.KindIndicator} {
		for _, n := range registry.Nodes(kind) {
			ref := n.Ref()
			var err error
			if kind == models.KindPredicate {
				err = n.Degraded()
			} else if reason := a.check(n); reason != nil {
				err = models.NewConfigError(ref, reason)
			} else if _, ok := cyclic[ref]; ok {
				err = models.NewConfigError(ref, models.ErrDependencyCycle)
			}

			if !sameError(err, n.Degraded()) {
				n.Degrade(err)
				p.touch(ref)
				p.touch(registry.Dependents(ref)...)
			}
			if err != nil {
				p.result.Degraded = append(p.result.Degraded, ref)
				a.logger.Error("degraded-node", err, lager.Data{"node": ref.String()})
			}
		}
	}
}

func (a *Applier) check(n graph.Node) error {
	registry := a.engine.Registry()
	switch node := n.(type) {
	case *graph.Indicator:
		cfg := node.Config()
		if _, ok := registry.Lookup(node.Owner()); !ok {
			return fmt.Errorf("%w: owner activity %d", models.ErrUnknownReference, cfg.ActivityID)
		}
		if cfg.Source.Type == models.SourceService {
			return a.checkService(cfg.Source.Service)
		}
		src, ok := cfg.Source.Ref()
		if !ok {
			return fmt.Errorf("%w: source type %q", models.ErrUnknownReference, cfg.Source.Type)
		}
		if _, ok := registry.Lookup(src); !ok {
			return fmt.Errorf("%w: source %s", models.ErrUnknownReference, src)
		}
	case *graph.Activity:
		cfg := node.Config()
		if cfg.VirtualService != nil {
			return a.checkService(*cfg.VirtualService)
		}
	case *graph.Aggregate:
		cfg := node.Config()
		for _, key := range cfg.Services {
			if err := a.checkService(key); err != nil {
				return err
			}
		}
		if cfg.VirtualService != nil {
			return a.checkService(*cfg.VirtualService)
		}
	}
	return nil
}

// checkService only rejects items when the snapshot carries a catalog.
func (a *Applier) checkService(key models.ServiceKey) error {
	if a.catalog.Len() == 0 || a.catalog.Has(key) {
		return nil
	}
	return fmt.Errorf("%w: service %s", models.ErrUnknownReference, key)
}

// cycles returns the nodes that belong to a strongly connected component
// with more than one node, or that depend on themselves.
func (a *Applier) cycles() map[models.NodeRef]struct{} {
	registry := a.engine.Registry()
	t := &tarjan{
		registry: registry,
		index:    make(map[models.NodeRef]int),
		low:      make(map[models.NodeRef]int),
		onStack:  make(map[models.NodeRef]bool),
		cyclic:   make(map[models.NodeRef]struct{}),
	}
	for _, kind := range []models.NodeKind{models.KindIndicator, models.KindActivity} {
		for _, n := range registry.Nodes(kind) {
			if _, seen := t.index[n.Ref()]; !seen {
				t.strongConnect(n.Ref())
			}
		}
	}
	return t.cyclic
}

type tarjan struct {
	registry *graph.Registry
	counter  int
	index    map[models.NodeRef]int
	low      map[models.NodeRef]int
	stack    []models.NodeRef
	onStack  map[models.NodeRef]bool
	cyclic   map[models.NodeRef]struct{}
}

func (t *tarjan) strongConnect(ref models.NodeRef) {
	t.index[ref] = t.counter
	t.low[ref] = t.counter
	t.counter++
	t.stack = append(t.stack, ref)
	t.onStack[ref] = true

	selfLoop := false
	for _, dep := range t.registry.Dependents(ref) {
		if _, ok := t.registry.Lookup(dep); !ok {
			continue
		}
		if dep == ref {
			selfLoop = true
		}
		if _, seen := t.index[dep]; !seen {
			t.strongConnect(dep)
			t.low[ref] = min(t.low[ref], t.low[dep])
		} else if t.onStack[dep] {
			t.low[ref] = min(t.low[ref], t.index[dep])
		}
	}

	if t.low[ref] != t.index[ref] {
		return
	}
	var component []models.NodeRef
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		component = append(component, top)
		if top == ref {
			break
		}
	}
	if len(component) > 1 || selfLoop {
		for _, c := range component {
			t.cyclic[c] = struct{}{}
		}
	}
}

func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return errors.Is(a, b) || a.Error() == b.Error()
}

func sortRefs(refs []models.NodeRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}
