package graph

import (
	"math"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// Activity combines the impacts of the indicators it owns.
type Activity struct {
	base
	logger lager.Logger
	cfg    models.ActivityConfig
}

func NewActivity(logger lager.Logger, cfg *models.ActivityConfig) *Activity {
	ref := models.ActivityRef(cfg.ID)
	return &Activity{
		base:   newBase(ref, NewEventTracker(logger, ref)),
		logger: logger.Session("activity", lager.Data{"id": cfg.ID}),
		cfg:    copyActivityConfig(cfg),
	}
}

func copyActivityConfig(cfg *models.ActivityConfig) models.ActivityConfig {
	c := *cfg
	if cfg.VirtualService != nil {
		vs := *cfg.VirtualService
		c.VirtualService = &vs
	}
	return c
}

func (n *Activity) Config() models.ActivityConfig {
	return n.cfg
}

func (n *Activity) Patch(cfg *models.ActivityConfig) bool {
	if n.cfg.Equal(cfg) {
		return false
	}
	n.cfg = copyActivityConfig(cfg)
	return true
}

type combiner struct {
	rule  models.AggregationRule
	count int
	crit  int
	value float64
}

func (c *combiner) add(impact float64, status models.Status) {
	switch c.rule {
	case models.RuleWorst:
		if c.count == 0 || impact > c.value {
			c.value = impact
		}
	case models.RuleBest:
		if c.count == 0 || impact < c.value {
			c.value = impact
		}
	case models.RuleRatio:
		if status == models.StatusCritical {
			c.crit++
		}
	default:
		c.value += impact
	}
	c.count++
}

func (c *combiner) result() float64 {
	switch c.rule {
	case models.RuleRatio:
		if c.count == 0 {
			return 0
		}
		return float64(c.crit) * 100 / float64(c.count)
	case models.RuleWorst, models.RuleBest:
		return c.value
	}
	return math.Max(0, math.Min(100, c.value))
}

func (n *Activity) Compute(g Graph) Result {
	if n.degraded != nil {
		return unknownResult(0)
	}

	effective := &combiner{rule: n.cfg.Rule}
	nominal := &combiner{rule: n.cfg.Rule}
	downtime := &combiner{rule: n.cfg.Rule}
	ack := &combiner{rule: n.cfg.Rule}
	impacting, impactingInDowntime, impactingAcked := 0, 0, 0

	for _, ref := range g.Inputs(n.ref) {
		if ref.Kind != models.KindIndicator {
			continue
		}
		in, ok := g.Node(ref)
		if !ok {
			continue
		}
		r := in.Result()
		nominal.add(r.Impact, r.Status)

		impact, status := r.Impact, r.Status
		if r.InDowntime {
			downtime.add(r.Impact, r.Status)
			if n.cfg.DowntimeBehaviour == models.DowntimeIgnoreKPI {
				impact, status = 0, models.StatusOK
			}
		}
		if r.Acknowledged {
			ack.add(r.Impact, r.Status)
		}
		effective.add(impact, status)

		if r.Impact > 0 {
			impacting++
			if r.InDowntime {
				impactingInDowntime++
			}
			if r.Acknowledged {
				impactingAcked++
			}
		}
	}

	if effective.count == 0 {
		n.logger.Debug("no-contribution", lager.Data{"error": models.ErrNoContribution.Error()})
		return unknownResult(0)
	}

	r := Result{
		Impact:         effective.result(),
		Nominal:        nominal.result(),
		DowntimeImpact: downtime.result(),
		AckImpact:      ack.result(),
		Acknowledged:   impacting > 0 && impactingAcked == impacting,
	}
	r.Status = n.status(r.Impact)

	if n.cfg.VirtualService != nil && g.Service(*n.cfg.VirtualService).InDowntime {
		r.InDowntime = true
	}
	if n.cfg.DowntimeBehaviour == models.DowntimeInherit && impacting > 0 && impactingInDowntime == impacting {
		r.InDowntime = true
	}
	return r
}

func (n *Activity) status(impact float64) models.Status {
	switch {
	case impact >= n.cfg.Critical:
		return models.StatusCritical
	case impact >= n.cfg.Warning:
		return models.StatusWarning
	}
	return models.StatusOK
}

func (n *Activity) Visit(g Graph, _ models.NodeRef, _ Result) Result {
	return n.Compute(g)
}

// Links only carries the virtual service: indicators declare the link to
// their owner.
func (n *Activity) Links() []Link {
	if n.cfg.VirtualService == nil {
		return nil
	}
	return []Link{watchLink(*n.cfg.VirtualService, n.ref)}
}

func (n *Activity) clone() Node {
	c := &Activity{
		base:   newBase(n.ref, NewEventTracker(n.logger, n.ref)),
		logger: n.logger,
		cfg:    copyActivityConfig(&n.cfg),
	}
	c.degraded = n.degraded
	return c
}
