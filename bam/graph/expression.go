package graph

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/bam-broker/models"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

const (
	hostUp = iota
	hostDown
	hostUnreachable
)

// serviceFunctions take (host, service) names; hostFunctions take a host name.
var serviceFunctions = map[string]int{
	"state":        2,
	"in_downtime":  2,
	"acknowledged": 2,
	"metric":       3,
}

var hostFunctions = map[string]int{
	"host_state": 1,
}

// Expression is a compiled predicate expression whose item names were
// resolved against a catalog.
type Expression struct {
	source   string
	program  *vm.Program
	resolved map[string]models.ServiceKey
}

type evaluation struct {
	g        Graph
	resolved map[string]models.ServiceKey
	missing  bool
}

func (e *evaluation) lookup(name string) ServiceState {
	key, ok := e.resolved[name]
	if !ok || e.g == nil {
		return ServiceState{State: models.StatusUnknown}
	}
	return e.g.Service(key)
}

func (e *evaluation) env() map[string]interface{} {
	return map[string]interface{}{
		"OK":          int(models.StatusOK),
		"WARNING":     int(models.StatusWarning),
		"CRITICAL":    int(models.StatusCritical),
		"UNKNOWN":     int(models.StatusUnknown),
		"UP":          hostUp,
		"DOWN":        hostDown,
		"UNREACHABLE": hostUnreachable,

		"state": func(host, service string) int {
			return int(e.lookup(itemName(host, service)).State)
		},
		"host_state": func(host string) int {
			switch e.lookup(itemName(host, "")).State {
			case models.StatusOK:
				return hostUp
			case models.StatusCritical:
				return hostDown
			}
			return hostUnreachable
		},
		"in_downtime": func(host, service string) bool {
			return e.lookup(itemName(host, service)).InDowntime
		},
		"acknowledged": func(host, service string) bool {
			return e.lookup(itemName(host, service)).Acknowledged
		},
		"metric": func(host, service, name string) float64 {
			s := e.lookup(itemName(host, service))
			v, ok := s.Metrics[name]
			if !ok {
				e.missing = true
			}
			return v
		},
	}
}

func itemName(host, service string) string {
	if service == "" {
		return strings.ToLower(host)
	}
	return strings.ToLower(host) + "/" + strings.ToLower(service)
}

type itemCall struct {
	host    string
	service string
}

type callCollector struct {
	calls []itemCall
	err   error
}

func (c *callCollector) Visit(node *ast.Node) {
	call, ok := (*node).(*ast.CallNode)
	if !ok || c.err != nil {
		return
	}
	ident, ok := call.Callee.(*ast.IdentifierNode)
	if !ok {
		return
	}
	arity, isService := serviceFunctions[ident.Value]
	if !isService {
		if arity, ok = hostFunctions[ident.Value]; !ok {
			return
		}
	}
	if len(call.Arguments) != arity {
		c.err = fmt.Errorf("%s expects %d arguments", ident.Value, arity)
		return
	}
	names := make([]string, 0, 2)
	for _, arg := range call.Arguments[:min(arity, 2)] {
		str, ok := arg.(*ast.StringNode)
		if !ok {
			c.err = fmt.Errorf("%s expects string literal names", ident.Value)
			return
		}
		names = append(names, str.Value)
	}
	if isService {
		c.calls = append(c.calls, itemCall{host: names[0], service: names[1]})
	} else {
		c.calls = append(c.calls, itemCall{host: names[0]})
	}
}

// CompileExpression parses source, resolves every host and service it names
// through catalog and compiles it to a boolean program.
func CompileExpression(source string, catalog *models.Catalog) (*Expression, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression: %w", err)
	}

	collector := &callCollector{}
	ast.Walk(&tree.Node, collector)
	if collector.err != nil {
		return nil, collector.err
	}

	resolved := make(map[string]models.ServiceKey, len(collector.calls))
	for _, call := range collector.calls {
		if call.service == "" {
			id, ok := catalog.ResolveHost(call.host)
			if !ok {
				return nil, fmt.Errorf("%w: host %q", models.ErrUnknownReference, call.host)
			}
			resolved[itemName(call.host, "")] = models.HostKey(id)
			continue
		}
		key, ok := catalog.ResolveService(call.host, call.service)
		if !ok {
			return nil, fmt.Errorf("%w: service %q on host %q", models.ErrUnknownReference, call.service, call.host)
		}
		resolved[itemName(call.host, call.service)] = key
	}

	probe := &evaluation{}
	program, err := expr.Compile(source, expr.Env(probe.env()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", err)
	}

	return &Expression{source: source, program: program, resolved: resolved}, nil
}

// Items returns the monitored items the expression reads.
func (x *Expression) Items() []models.ServiceKey {
	seen := make(map[models.ServiceKey]struct{}, len(x.resolved))
	keys := make([]models.ServiceKey, 0, len(x.resolved))
	for _, key := range x.resolved {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sortKeys(keys)
	return keys
}

func (x *Expression) sameItems(other *Expression) bool {
	if len(x.resolved) != len(other.resolved) {
		return false
	}
	for name, key := range x.resolved {
		if other.resolved[name] != key {
			return false
		}
	}
	return true
}

// Evaluate runs the expression against the monitored item states of g.
func (x *Expression) Evaluate(g Graph) (bool, error) {
	e := &evaluation{g: g, resolved: x.resolved}
	out, err := expr.Run(x.program, e.env())
	if err != nil {
		return false, err
	}
	if e.missing {
		return false, models.ErrNoMetricValue
	}
	v, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T", out)
	}
	return v, nil
}
