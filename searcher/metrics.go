package searcher

import (
	"sync/atomic"
	"time"
)

// Metrics summarizes one completed search.
type Metrics struct {
	StartTime   time.Time
	Duration    time.Duration
	Depth       int
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
}

// Collector gathers statistics during a search.
type Collector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() Metrics
}

type collector struct {
	startTime   time.Time
	depth       int
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes.Store(0)
	c.evaluations.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() Metrics {
	return Metrics{
		StartTime:   c.startTime,
		Duration:    time.Since(c.startTime),
		Depth:       c.depth,
		Nodes:       c.nodes.Load(),
		Evaluations: c.evaluations.Load(),
		Cutoffs:     c.cutoffs.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)         {}
func (dummyCollector) AddNode()          {}
func (dummyCollector) AddEvaluation()    {}
func (dummyCollector) AddCutoff()        {}
func (dummyCollector) Complete() Metrics { return Metrics{} }
