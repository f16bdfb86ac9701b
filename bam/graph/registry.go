package graph

import (
	"sort"

	"code.cloudfoundry.org/bam-broker/models"
)

type refSet map[models.NodeRef]int

func (s refSet) sorted() []models.NodeRef {
	refs := make([]models.NodeRef, 0, len(s))
	for ref := range s {
		refs = append(refs, ref)
	}
	sortRefs(refs)
	return refs
}

func sortRefs(refs []models.NodeRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}

// Registry owns the nodes of a graph and indexes the links they declare.
// Links are kept by id: a link towards a removed node stays indexed and
// resolves as absent until a node with the same ref is inserted again.
type Registry struct {
	nodes      map[models.NodeRef]Node
	declared   map[models.NodeRef][]Link
	dependents map[models.NodeRef]refSet
	inputs     map[models.NodeRef]refSet
	watchers   map[models.ServiceKey]refSet
}

func NewRegistry() *Registry {
	return &Registry{
		nodes:      make(map[models.NodeRef]Node),
		declared:   make(map[models.NodeRef][]Link),
		dependents: make(map[models.NodeRef]refSet),
		inputs:     make(map[models.NodeRef]refSet),
		watchers:   make(map[models.ServiceKey]refSet),
	}
}

func (r *Registry) Lookup(ref models.NodeRef) (Node, bool) {
	n, ok := r.nodes[ref]
	return n, ok
}

// Insert adds the node, replacing any node with the same ref.
func (r *Registry) Insert(n Node) {
	ref := n.Ref()
	if _, exists := r.nodes[ref]; exists {
		r.Remove(ref)
	}
	r.nodes[ref] = n
	r.index(ref, n.Links())
}

// Update re-indexes the links of a node after it was patched.
func (r *Registry) Update(n Node) {
	ref := n.Ref()
	r.unindex(ref)
	r.index(ref, n.Links())
}

func (r *Registry) Remove(ref models.NodeRef) (Node, bool) {
	n, ok := r.nodes[ref]
	if !ok {
		return nil, false
	}
	r.unindex(ref)
	delete(r.nodes, ref)
	return n, true
}

// Nodes returns the nodes of a kind sorted by id.
func (r *Registry) Nodes(kind models.NodeKind) []Node {
	var nodes []Node
	for ref, n := range r.nodes {
		if ref.Kind == kind {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Ref().ID < nodes[j].Ref().ID })
	return nodes
}

func (r *Registry) Len(kind models.NodeKind) int {
	count := 0
	for ref := range r.nodes {
		if ref.Kind == kind {
			count++
		}
	}
	return count
}

// Dependents lists the nodes reading ref.
func (r *Registry) Dependents(ref models.NodeRef) []models.NodeRef {
	return r.dependents[ref].sorted()
}

// Inputs lists the nodes ref reads.
func (r *Registry) Inputs(ref models.NodeRef) []models.NodeRef {
	return r.inputs[ref].sorted()
}

// Watchers lists the nodes reading a monitored item.
func (r *Registry) Watchers(key models.ServiceKey) []models.NodeRef {
	return r.watchers[key].sorted()
}

// Order sorts refs so that every node comes after the inputs it shares with
// the set. Refs caught in a cycle keep their (kind, id) order at the end.
func (r *Registry) Order(refs []models.NodeRef) []models.NodeRef {
	ordered, _ := r.order(refs)
	return ordered
}

// order also reports how many refs at the tail sit on a cycle.
func (r *Registry) order(refs []models.NodeRef) ([]models.NodeRef, int) {
	pending := make(map[models.NodeRef]int, len(refs))
	for _, ref := range refs {
		pending[ref] = 0
	}
	for ref := range pending {
		for in := range r.inputs[ref] {
			if _, ok := pending[in]; ok && in != ref {
				pending[ref]++
			}
		}
	}

	ordered := make([]models.NodeRef, 0, len(pending))
	for len(pending) > 0 {
		var ready []models.NodeRef
		for ref, count := range pending {
			if count == 0 {
				ready = append(ready, ref)
			}
		}
		if len(ready) == 0 {
			rest := make([]models.NodeRef, 0, len(pending))
			for ref := range pending {
				rest = append(rest, ref)
			}
			sortRefs(rest)
			return append(ordered, rest...), len(rest)
		}
		sortRefs(ready)
		for _, ref := range ready {
			delete(pending, ref)
			for dep := range r.dependents[ref] {
				if _, ok := pending[dep]; ok && dep != ref {
					pending[dep]--
				}
			}
		}
		ordered = append(ordered, ready...)
	}
	return ordered, 0
}

// Closure returns refs plus every node they transitively read.
func (r *Registry) Closure(refs []models.NodeRef) []models.NodeRef {
	seen := make(refSet)
	stack := append([]models.NodeRef(nil), refs...)
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = 1
		for in := range r.inputs[ref] {
			stack = append(stack, in)
		}
	}
	return seen.sorted()
}

// Downstream lists refs and every node that transitively reads one of them.
func (r *Registry) Downstream(refs []models.NodeRef) []models.NodeRef {
	seen := make(refSet)
	stack := append([]models.NodeRef(nil), refs...)
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = 1
		for dep := range r.dependents[ref] {
			stack = append(stack, dep)
		}
	}
	return seen.sorted()
}

func (r *Registry) index(ref models.NodeRef, links []Link) {
	r.declared[ref] = links
	for _, l := range links {
		if l.Watch {
			addRef(r.watchers, l.Service, l.To)
			continue
		}
		addRef(r.dependents, l.From, l.To)
		addRef(r.inputs, l.To, l.From)
	}
}

func (r *Registry) unindex(ref models.NodeRef) {
	for _, l := range r.declared[ref] {
		if l.Watch {
			dropRef(r.watchers, l.Service, l.To)
			continue
		}
		dropRef(r.dependents, l.From, l.To)
		dropRef(r.inputs, l.To, l.From)
	}
	delete(r.declared, ref)
}

func addRef[K comparable](index map[K]refSet, key K, ref models.NodeRef) {
	set, ok := index[key]
	if !ok {
		set = make(refSet)
		index[key] = set
	}
	set[ref]++
}

func dropRef[K comparable](index map[K]refSet, key K, ref models.NodeRef) {
	set, ok := index[key]
	if !ok {
		return
	}
	if set[ref] <= 1 {
		delete(set, ref)
	} else {
		set[ref]--
	}
	if len(set) == 0 {
		delete(index, key)
	}
}
