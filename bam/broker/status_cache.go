package broker

import (
	"time"

	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/models"

	"github.com/patrickmn/go-cache"
)

// NodeStatus is the last computed state of a node as served over HTTP.
type NodeStatus struct {
	Ref             models.NodeRef    `json:"ref"`
	Impact          float64           `json:"impact"`
	Status          models.Status     `json:"status"`
	InDowntime      bool              `json:"in_downtime"`
	Acknowledged    bool              `json:"acknowledged"`
	Nominal         float64           `json:"nominal"`
	DowntimeImpact  float64           `json:"downtime_impact"`
	AckImpact       float64           `json:"ack_impact"`
	Value           *float64          `json:"value,omitempty"`
	LastStateChange time.Time         `json:"last_state_change"`
	Degraded        string            `json:"degraded,omitempty"`
	CurrentEvent    *models.NodeEvent `json:"current_event,omitempty"`
}

func StatusOf(n graph.Node) NodeStatus {
	r := n.Result()
	s := NodeStatus{
		Ref:             n.Ref(),
		Impact:          r.Impact,
		Status:          r.Status,
		InDowntime:      r.InDowntime,
		Acknowledged:    r.Acknowledged,
		Nominal:         r.Nominal,
		DowntimeImpact:  r.DowntimeImpact,
		AckImpact:       r.AckImpact,
		LastStateChange: n.LastStateChange(),
	}
	if n.Ref().Kind == models.KindAggregate {
		v := r.Value
		s.Value = &v
	}
	if err := n.Degraded(); err != nil {
		s.Degraded = err.Error()
	}
	if t := n.Tracker(); t != nil {
		s.CurrentEvent = t.Current()
	}
	return s
}

// StatusCache holds node statuses for readers outside the pipeline. Entries
// expire unless the pipeline republishes them.
type StatusCache struct {
	cache *cache.Cache
}

func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{cache: cache.New(ttl, 2*ttl)}
}

func (c *StatusCache) Set(s NodeStatus) {
	c.cache.SetDefault(s.Ref.String(), s)
}

func (c *StatusCache) Get(ref models.NodeRef) (NodeStatus, bool) {
	v, ok := c.cache.Get(ref.String())
	if !ok {
		return NodeStatus{}, false
	}
	return v.(NodeStatus), true
}

func (c *StatusCache) Remove(ref models.NodeRef) {
	c.cache.Delete(ref.String())
}

func (c *StatusCache) Len() int {
	return c.cache.ItemCount()
}
