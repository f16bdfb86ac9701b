package models

import (
	"fmt"
	"strings"
)

type SourceType string

const (
	SourceService   SourceType = "service"
	SourcePredicate SourceType = "predicate"
	SourceActivity  SourceType = "activity"
	SourceAggregate SourceType = "aggregate"
)

type AggregationRule string

const (
	RuleSum   AggregationRule = "sum"
	RuleWorst AggregationRule = "worst"
	RuleBest  AggregationRule = "best"
	RuleRatio AggregationRule = "ratio"
)

// DowntimeBehaviour selects how indicators in downtime weigh on an activity.
type DowntimeBehaviour string

const (
	DowntimeIgnore    DowntimeBehaviour = "ignore"
	DowntimeInherit   DowntimeBehaviour = "inherit"
	DowntimeIgnoreKPI DowntimeBehaviour = "ignore_kpi"
)

type Computation string

const (
	ComputeAverage Computation = "average"
	ComputeMin     Computation = "min"
	ComputeMax     Computation = "max"
	ComputeSum     Computation = "sum"
)

type PredicateConfig struct {
	ID         uint32  `json:"id" db:"predicate_id"`
	Name       string  `json:"name" db:"name"`
	Expression string  `json:"expression" db:"expression"`
	Impact     float64 `json:"impact" db:"impact"`
	ImpactIf   bool    `json:"impact_if" db:"impact_if"`
}

type IndicatorSource struct {
	Type    SourceType `json:"type"`
	Service ServiceKey `json:"service"`
	ID      uint32     `json:"id"`
}

// Ref returns the graph node the source points at. It is only meaningful
// for non-service sources.
func (s IndicatorSource) Ref() (NodeRef, bool) {
	switch s.Type {
	case SourcePredicate:
		return PredicateRef(s.ID), true
	case SourceActivity:
		return ActivityRef(s.ID), true
	case SourceAggregate:
		return AggregateRef(s.ID), true
	}
	return NodeRef{}, false
}

func (s IndicatorSource) String() string {
	if s.Type == SourceService {
		return fmt.Sprintf("service(%s)", s.Service)
	}
	return fmt.Sprintf("%s(%d)", s.Type, s.ID)
}

type IndicatorConfig struct {
	ID             uint32          `json:"id"`
	ActivityID     uint32          `json:"activity_id"`
	Source         IndicatorSource `json:"source"`
	ImpactWarning  float64         `json:"impact_warning"`
	ImpactCritical float64         `json:"impact_critical"`
	ImpactUnknown  float64         `json:"impact_unknown"`
}

type ActivityConfig struct {
	ID                uint32            `json:"id"`
	Name              string            `json:"name"`
	Rule              AggregationRule   `json:"rule"`
	Warning           float64           `json:"warning"`
	Critical          float64           `json:"critical"`
	DowntimeBehaviour DowntimeBehaviour `json:"downtime_behaviour"`
	VirtualService    *ServiceKey       `json:"virtual_service,omitempty"`
}

func (c *ActivityConfig) Equal(other *ActivityConfig) bool {
	return c.ID == other.ID &&
		c.Name == other.Name &&
		c.Rule == other.Rule &&
		c.Warning == other.Warning &&
		c.Critical == other.Critical &&
		c.DowntimeBehaviour == other.DowntimeBehaviour &&
		sameServiceKey(c.VirtualService, other.VirtualService)
}

type AggregateConfig struct {
	ID             uint32       `json:"id"`
	Name           string       `json:"name"`
	Computation    Computation  `json:"computation"`
	Metric         string       `json:"metric"`
	Services       []ServiceKey `json:"services"`
	Warning        float64      `json:"warning"`
	Critical       float64      `json:"critical"`
	VirtualService *ServiceKey  `json:"virtual_service,omitempty"`
}

func (c *AggregateConfig) Equal(other *AggregateConfig) bool {
	if c.ID != other.ID ||
		c.Name != other.Name ||
		c.Computation != other.Computation ||
		c.Metric != other.Metric ||
		c.Warning != other.Warning ||
		c.Critical != other.Critical ||
		!sameServiceKey(c.VirtualService, other.VirtualService) ||
		len(c.Services) != len(other.Services) {
		return false
	}
	for i := range c.Services {
		if c.Services[i] != other.Services[i] {
			return false
		}
	}
	return true
}

func sameServiceKey(a, b *ServiceKey) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type CatalogItem struct {
	Key         ServiceKey `json:"key"`
	HostName    string     `json:"host_name"`
	Description string     `json:"description"`
}

// Catalog lists the monitored items known to the configuration. Predicate
// expressions address items by name and resolve them through it.
type Catalog struct {
	hosts    map[string]uint32
	services map[string]ServiceKey
	keys     map[ServiceKey]struct{}
}

func NewCatalog(items []CatalogItem) *Catalog {
	c := &Catalog{
		hosts:    make(map[string]uint32),
		services: make(map[string]ServiceKey),
		keys:     make(map[ServiceKey]struct{}),
	}
	for _, item := range items {
		c.hosts[item.HostName] = item.Key.HostID
		c.keys[HostKey(item.Key.HostID)] = struct{}{}
		if !item.Key.IsHost() {
			c.services[serviceName(item.HostName, item.Description)] = item.Key
			c.keys[item.Key] = struct{}{}
		}
	}
	return c
}

func serviceName(host, description string) string {
	return strings.ToLower(host) + "/" + strings.ToLower(description)
}

func (c *Catalog) ResolveHost(name string) (uint32, bool) {
	if c == nil {
		return 0, false
	}
	id, ok := c.hosts[name]
	return id, ok
}

func (c *Catalog) ResolveService(host, description string) (ServiceKey, bool) {
	if c == nil {
		return ServiceKey{}, false
	}
	key, ok := c.services[serviceName(host, description)]
	return key, ok
}

func (c *Catalog) Has(key ServiceKey) bool {
	if c == nil {
		return false
	}
	_, ok := c.keys[key]
	return ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// ConfigurationSnapshot is the complete BA configuration. It is always
// delivered wholesale; the applier computes the difference with the live
// graph.
type ConfigurationSnapshot struct {
	Predicates map[uint32]*PredicateConfig
	Indicators map[uint32]*IndicatorConfig
	Activities map[uint32]*ActivityConfig
	Aggregates map[uint32]*AggregateConfig
	Catalog    *Catalog
}

func NewConfigurationSnapshot() *ConfigurationSnapshot {
	return &ConfigurationSnapshot{
		Predicates: make(map[uint32]*PredicateConfig),
		Indicators: make(map[uint32]*IndicatorConfig),
		Activities: make(map[uint32]*ActivityConfig),
		Aggregates: make(map[uint32]*AggregateConfig),
		Catalog:    NewCatalog(nil),
	}
}

func (s *ConfigurationSnapshot) Size() int {
	return len(s.Predicates) + len(s.Indicators) + len(s.Activities) + len(s.Aggregates)
}
