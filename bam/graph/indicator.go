package graph

import (
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// Indicator converts the state of its source into an impact on the owning
// activity.
type Indicator struct {
	base
	logger lager.Logger
	cfg    models.IndicatorConfig
}

func NewIndicator(logger lager.Logger, cfg *models.IndicatorConfig) *Indicator {
	ref := models.IndicatorRef(cfg.ID)
	return &Indicator{
		base:   newBase(ref, NewEventTracker(logger, ref)),
		logger: logger.Session("indicator", lager.Data{"id": cfg.ID}),
		cfg:    *cfg,
	}
}

func (n *Indicator) Config() models.IndicatorConfig {
	return n.cfg
}

func (n *Indicator) Owner() models.NodeRef {
	return models.ActivityRef(n.cfg.ActivityID)
}

// Patch replaces the configuration and reports whether it changed. No event
// is emitted; the next computation picks up the new values.
func (n *Indicator) Patch(cfg *models.IndicatorConfig) bool {
	if n.cfg == *cfg {
		return false
	}
	n.cfg = *cfg
	return true
}

func (n *Indicator) drop(status models.Status) float64 {
	switch status {
	case models.StatusOK:
		return 0
	case models.StatusWarning:
		return n.cfg.ImpactWarning
	case models.StatusCritical:
		return n.cfg.ImpactCritical
	}
	return n.cfg.ImpactUnknown
}

func (n *Indicator) Compute(g Graph) Result {
	if n.degraded != nil {
		return n.finish(unknownResult(n.cfg.ImpactUnknown))
	}

	if n.cfg.Source.Type == models.SourceService {
		s := g.Service(n.cfg.Source.Service)
		return n.finish(Result{
			Impact:       n.drop(s.State),
			Status:       s.State,
			InDowntime:   s.InDowntime,
			Acknowledged: s.Acknowledged,
		})
	}

	ref, ok := n.cfg.Source.Ref()
	if !ok {
		return n.finish(unknownResult(n.cfg.ImpactUnknown))
	}
	src, ok := g.Node(ref)
	if !ok {
		return n.finish(unknownResult(n.cfg.ImpactUnknown))
	}
	return n.fromSource(src.Result())
}

func (n *Indicator) Visit(g Graph, _ models.NodeRef, _ Result) Result {
	return n.Compute(g)
}

func (n *Indicator) fromSource(src Result) Result {
	r := Result{
		Status:       src.Status,
		InDowntime:   src.InDowntime,
		Acknowledged: src.Acknowledged,
	}
	switch n.cfg.Source.Type {
	case models.SourcePredicate:
		if src.Status == models.StatusUnknown {
			r.Impact = n.cfg.ImpactUnknown
		} else {
			r.Impact = src.Impact
		}
	case models.SourceActivity:
		r.Impact = src.Impact
	case models.SourceAggregate:
		r.Impact = n.drop(src.Status)
	}
	return n.finish(r)
}

func (n *Indicator) finish(r Result) Result {
	r.Nominal = r.Impact
	if r.InDowntime {
		r.DowntimeImpact = r.Impact
	}
	if r.Acknowledged {
		r.AckImpact = r.Impact
	}
	return r
}

func (n *Indicator) Links() []Link {
	links := make([]Link, 0, 2)
	if n.cfg.Source.Type == models.SourceService {
		links = append(links, watchLink(n.cfg.Source.Service, n.ref))
	} else if src, ok := n.cfg.Source.Ref(); ok {
		links = append(links, nodeLink(src, n.ref))
	}
	return append(links, nodeLink(n.ref, n.Owner()))
}

func (n *Indicator) clone() Node {
	c := &Indicator{
		base:   newBase(n.ref, NewEventTracker(n.logger, n.ref)),
		logger: n.logger,
		cfg:    n.cfg,
	}
	c.degraded = n.degraded
	return c
}
