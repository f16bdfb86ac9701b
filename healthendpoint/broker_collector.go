package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BrokerStats is a point-in-time reading of the broker counters. Every field
// must be safe to read outside the pipeline goroutine.
type BrokerStats struct {
	Messages       uint64
	Recomputations uint64
	Events         uint64
	Cycles         uint64
	Persisted      uint64
	Dropped        uint64
	PendingRaw     int
	PendingWrites  int
	CachedNodes    int
}

type brokerMetric struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(BrokerStats) float64
}

type brokerCollector struct {
	metrics []brokerMetric
	stats   func() BrokerStats
}

func NewBrokerCollector(namespace, subSystem string, stats func() BrokerStats) prometheus.Collector {
	metric := func(name, help string, t prometheus.ValueType, value func(BrokerStats) float64) brokerMetric {
		return brokerMetric{
			desc:      prometheus.NewDesc(prometheus.BuildFQName(namespace, subSystem, name), help, nil, nil),
			valueType: t,
			value:     value,
		}
	}
	return &brokerCollector{
		stats: stats,
		metrics: []brokerMetric{
			metric("raw_messages_total", "Monitoring messages applied to the state book", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Messages) }),
			metric("recomputations_total", "Node recomputations", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Recomputations) }),
			metric("events_total", "Node events emitted", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Events) }),
			metric("dependency_cycles_total", "Cascades stopped on a dependency cycle", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Cycles) }),
			metric("persisted_total", "Database writes that succeeded", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Persisted) }),
			metric("dropped_total", "Database writes dropped after retrying", prometheus.CounterValue,
				func(s BrokerStats) float64 { return float64(s.Dropped) }),
			metric("pending_raw_messages", "Monitoring messages waiting for the pipeline", prometheus.GaugeValue,
				func(s BrokerStats) float64 { return float64(s.PendingRaw) }),
			metric("pending_writes", "Messages waiting for the persister", prometheus.GaugeValue,
				func(s BrokerStats) float64 { return float64(s.PendingWrites) }),
			metric("cached_nodes", "Node statuses available to readers", prometheus.GaugeValue,
				func(s BrokerStats) float64 { return float64(s.CachedNodes) }),
		},
	}
}

func (c *brokerCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		ch <- m.desc
	}
}

func (c *brokerCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.stats()
	for _, m := range c.metrics {
		ch <- prometheus.MustNewConstMetric(m.desc, m.valueType, m.value(stats))
	}
}
