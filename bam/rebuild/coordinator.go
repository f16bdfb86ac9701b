package rebuild

import (
	"errors"
	"sort"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

var (
	ErrNoTargets     = errors.New("no rebuildable target")
	ErrInvalidWindow = errors.New("rebuild window end must be after its start")
	ErrBusy          = errors.New("rebuild queue is full")
)

// Job asks for the timelines of Targets to be recomputed over [From, To)
// from the recorded statuses in History. Seed holds the last status of each
// item before From, the state the replay starts from.
type Job struct {
	Targets []models.NodeRef
	From    time.Time
	To      time.Time
	Seed    []*models.ServiceStatus
	History []*models.ServiceStatus
}

// Coordinator recomputes past timelines on a private copy of the graph and
// splices the result into the live trackers.
type Coordinator struct {
	logger lager.Logger
	engine *graph.Engine
	sink   graph.EventSink
}

func NewCoordinator(logger lager.Logger, engine *graph.Engine, sink graph.EventSink) *Coordinator {
	return &Coordinator{
		logger: logger.Session("rebuild-coordinator"),
		engine: engine,
		sink:   sink,
	}
}

type targetCollector struct {
	targets map[models.NodeRef]struct{}
	events  []*models.NodeEvent
}

func (c *targetCollector) Publish(msg models.Message) {
	ev, ok := msg.(*models.NodeEvent)
	if !ok {
		return
	}
	if _, ok := c.targets[ev.Owner]; ok {
		c.events = append(c.events, ev)
	}
}

// Rebuild replays job and returns the target events it emitted.
func (c *Coordinator) Rebuild(job Job) ([]*models.NodeEvent, error) {
	logger := c.logger.Session("rebuild", lager.Data{"from": job.From, "to": job.To, "records": len(job.History)})

	if !job.To.After(job.From) {
		return nil, ErrInvalidWindow
	}
	targets := c.liveTargets(logger, job.Targets)
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	logger.Info("start", lager.Data{"targets": targets})

	c.sink.Publish(&models.RebuildStart{Targets: targets, From: job.From, To: job.To})

	collector := &targetCollector{targets: make(map[models.NodeRef]struct{}, len(targets))}
	for _, ref := range targets {
		collector.targets[ref] = struct{}{}
	}
	scratch := graph.CloneClosure(c.engine.Registry(), targets)
	book := graph.NewStateBook()
	for _, status := range job.Seed {
		if status.Timestamp.Before(job.From) {
			book.Apply(status)
		}
	}
	replay := graph.NewEngine(logger.Session("replay"), scratch, book, collector)
	replay.Refresh(scratch.Closure(targets), job.From)

	for _, status := range sortedHistory(job.History, job.From, job.To) {
		replay.Process(status, status.Timestamp)
	}

	for _, ev := range collector.events {
		c.sink.Publish(ev)
	}

	for _, ref := range targets {
		replayed, _ := scratch.Lookup(ref)
		c.splice(ref, replayed.Tracker().Current(), job.To)
	}

	c.sink.Publish(&models.RebuildEnd{Targets: targets})
	logger.Info("end", lager.Data{"events": len(collector.events)})
	return collector.events, nil
}

// splice hands the replayed open event to the live tracker. When the live
// value differs, the live node changed after the replay last did: the
// replayed event is closed where the live event started, or at the end of
// the window when the live change predates the replayed one and the history
// missed it.
func (c *Coordinator) splice(ref models.NodeRef, replayed *models.NodeEvent, to time.Time) {
	current, _ := c.engine.Registry().Lookup(ref)
	tracker := current.Tracker()
	live := tracker.Current()
	tracker.Discard()
	tracker.Adopt(replayed)
	if live == nil || replayed == nil {
		return
	}

	at := to
	if live.Start.After(replayed.Start) {
		at = live.Start
	}
	c.engine.Emit(tracker.Update(current.Result(), at)...)
}

// liveTargets keeps the activities and aggregates present in the live graph.
func (c *Coordinator) liveTargets(logger lager.Logger, refs []models.NodeRef) []models.NodeRef {
	seen := make(map[models.NodeRef]struct{}, len(refs))
	targets := make([]models.NodeRef, 0, len(refs))
	for _, ref := range refs {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		if ref.Kind != models.KindActivity && ref.Kind != models.KindAggregate {
			logger.Info("skip-target", lager.Data{"target": ref.String(), "reason": "not an activity or aggregate"})
			continue
		}
		if _, ok := c.engine.Registry().Lookup(ref); !ok {
			logger.Info("skip-target", lager.Data{"target": ref.String(), "reason": "unknown"})
			continue
		}
		targets = append(targets, ref)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Less(targets[j]) })
	return targets
}

// sortedHistory keeps the records in [from, to) ordered by time, host and
// service.
func sortedHistory(history []*models.ServiceStatus, from, to time.Time) []*models.ServiceStatus {
	records := make([]*models.ServiceStatus, 0, len(history))
	for _, s := range history {
		if s.Timestamp.Before(from) || !s.Timestamp.Before(to) {
			continue
		}
		records = append(records, s)
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.Key.Less(b.Key)
	})
	return records
}
