package graph

import (
	"code.cloudfoundry.org/bam-broker/models"
)

// CloneClosure copies targets and every node they transitively read into a
// new registry. The copies share the configuration of the originals but
// start from bootstrap with unknown results.
func CloneClosure(live *Registry, targets []models.NodeRef) *Registry {
	scratch := NewRegistry()
	for _, ref := range live.Closure(targets) {
		n, ok := live.Lookup(ref)
		if !ok {
			continue
		}
		scratch.Insert(n.clone())
	}
	return scratch
}
