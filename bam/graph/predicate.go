package graph

import (
	"sort"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// Predicate is a boolean condition over monitored items. It has no timeline
// of its own; indicators turn it into an impact.
type Predicate struct {
	base
	logger  lager.Logger
	cfg     models.PredicateConfig
	catalog *models.Catalog
	expr    *Expression
}

func NewPredicate(logger lager.Logger, cfg *models.PredicateConfig, catalog *models.Catalog) *Predicate {
	ref := models.PredicateRef(cfg.ID)
	p := &Predicate{
		base:   newBase(ref, nil),
		logger: logger.Session("predicate", lager.Data{"id": cfg.ID}),
	}
	p.Patch(cfg, catalog)
	return p
}

func (p *Predicate) Config() models.PredicateConfig {
	return p.cfg
}

// Patch reconfigures the predicate in place and reports whether anything
// observable changed.
func (p *Predicate) Patch(cfg *models.PredicateConfig, catalog *models.Catalog) bool {
	compiled, err := CompileExpression(cfg.Expression, catalog)
	if err != nil {
		err = models.NewConfigError(p.ref, err)
	}

	fresh := p.expr == nil && p.degraded == nil
	changed := fresh || p.cfg != *cfg || (p.degraded == nil) != (err == nil)
	if !changed && compiled != nil && p.expr != nil {
		changed = !compiled.sameItems(p.expr)
	}

	p.cfg = *cfg
	p.catalog = catalog
	p.expr = compiled
	p.degraded = err
	if err != nil {
		p.logger.Error("failed-to-configure", err, lager.Data{"expression": cfg.Expression})
	}
	return changed
}

func (p *Predicate) Compute(g Graph) Result {
	if p.degraded != nil || p.expr == nil {
		return unknownResult(0)
	}
	state, err := p.expr.Evaluate(g)
	if err != nil {
		p.logger.Debug("failed-to-evaluate", lager.Data{"error": err.Error()})
		return unknownResult(0)
	}

	r := Result{State: state, Status: models.StatusOK}
	if state == p.cfg.ImpactIf {
		r.Impact = p.cfg.Impact
		r.Status = models.StatusCritical
	}
	r.Nominal = r.Impact
	for _, key := range p.expr.Items() {
		s := g.Service(key)
		r.InDowntime = r.InDowntime || s.InDowntime
		r.Acknowledged = r.Acknowledged || s.Acknowledged
	}
	if r.InDowntime {
		r.DowntimeImpact = r.Impact
	}
	if r.Acknowledged {
		r.AckImpact = r.Impact
	}
	return r
}

func (p *Predicate) Visit(g Graph, _ models.NodeRef, _ Result) Result {
	return p.Compute(g)
}

func (p *Predicate) Links() []Link {
	if p.expr == nil {
		return nil
	}
	items := p.expr.Items()
	links := make([]Link, 0, len(items))
	for _, key := range items {
		links = append(links, watchLink(key, p.ref))
	}
	return links
}

func (p *Predicate) clone() Node {
	c := &Predicate{
		base:    newBase(p.ref, nil),
		logger:  p.logger,
		cfg:     p.cfg,
		catalog: p.catalog,
		expr:    p.expr,
	}
	c.degraded = p.degraded
	return c
}

func sortKeys(keys []models.ServiceKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
