package graph

import (
	"math"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// Aggregate computes one metric across a set of monitored items. Its impact
// is the aggregated value, in the metric's unit.
type Aggregate struct {
	base
	logger lager.Logger
	cfg    models.AggregateConfig
}

func NewAggregate(logger lager.Logger, cfg *models.AggregateConfig) *Aggregate {
	ref := models.AggregateRef(cfg.ID)
	return &Aggregate{
		base:   newBase(ref, NewEventTracker(logger, ref)),
		logger: logger.Session("aggregate", lager.Data{"id": cfg.ID}),
		cfg:    copyAggregateConfig(cfg),
	}
}

func copyAggregateConfig(cfg *models.AggregateConfig) models.AggregateConfig {
	c := *cfg
	c.Services = append([]models.ServiceKey(nil), cfg.Services...)
	if cfg.VirtualService != nil {
		vs := *cfg.VirtualService
		c.VirtualService = &vs
	}
	return c
}

func (n *Aggregate) Config() models.AggregateConfig {
	return n.cfg
}

func (n *Aggregate) Patch(cfg *models.AggregateConfig) bool {
	if n.cfg.Equal(cfg) {
		return false
	}
	n.cfg = copyAggregateConfig(cfg)
	return true
}

func (n *Aggregate) Compute(g Graph) Result {
	if n.degraded != nil {
		return unknownResult(0)
	}

	var (
		values []float64
		r      Result
	)
	for _, key := range n.cfg.Services {
		s := g.Service(key)
		if v, ok := s.Metrics[n.cfg.Metric]; ok {
			values = append(values, v)
		}
		r.Acknowledged = r.Acknowledged || s.Acknowledged
	}
	if n.cfg.VirtualService != nil {
		r.InDowntime = g.Service(*n.cfg.VirtualService).InDowntime
	}

	if len(values) == 0 {
		n.logger.Debug("no-metric-value", lager.Data{"metric": n.cfg.Metric, "error": models.ErrNoMetricValue.Error()})
		r.Status = models.StatusUnknown
		return r
	}

	r.Value = n.aggregate(values)
	r.Impact = r.Value
	r.Nominal = r.Value
	r.Status = n.status(r.Value)
	if r.InDowntime {
		r.DowntimeImpact = r.Value
	}
	if r.Acknowledged {
		r.AckImpact = r.Value
	}
	return r
}

func (n *Aggregate) aggregate(values []float64) float64 {
	acc := values[0]
	for _, v := range values[1:] {
		switch n.cfg.Computation {
		case models.ComputeMin:
			acc = math.Min(acc, v)
		case models.ComputeMax:
			acc = math.Max(acc, v)
		default:
			acc += v
		}
	}
	if n.cfg.Computation == models.ComputeAverage {
		acc /= float64(len(values))
	}
	return acc
}

// status compares against the thresholds; when warning is above critical
// lower values are worse.
func (n *Aggregate) status(v float64) models.Status {
	if n.cfg.Warning > n.cfg.Critical {
		switch {
		case v <= n.cfg.Critical:
			return models.StatusCritical
		case v <= n.cfg.Warning:
			return models.StatusWarning
		}
		return models.StatusOK
	}
	switch {
	case v >= n.cfg.Critical:
		return models.StatusCritical
	case v >= n.cfg.Warning:
		return models.StatusWarning
	}
	return models.StatusOK
}

func (n *Aggregate) Visit(g Graph, _ models.NodeRef, _ Result) Result {
	return n.Compute(g)
}

func (n *Aggregate) Links() []Link {
	links := make([]Link, 0, len(n.cfg.Services)+1)
	seen := make(map[models.ServiceKey]struct{}, len(n.cfg.Services)+1)
	add := func(key models.ServiceKey) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		links = append(links, watchLink(key, n.ref))
	}
	for _, key := range n.cfg.Services {
		add(key)
	}
	if n.cfg.VirtualService != nil {
		add(*n.cfg.VirtualService)
	}
	return links
}

func (n *Aggregate) clone() Node {
	c := &Aggregate{
		base:   newBase(n.ref, NewEventTracker(n.logger, n.ref)),
		logger: n.logger,
		cfg:    copyAggregateConfig(&n.cfg),
	}
	c.degraded = n.degraded
	return c
}
