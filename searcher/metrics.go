package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Depth      Depth
	Goroutines int
	Nodes      int64 // Positions visited
	Leaves     int64 // Positions scored by the evaluator
	Cutoffs    int64 // Nodes whose remaining siblings were pruned
}

type Collector interface {
	Start(depth Depth, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	depth      Depth
	goroutines int
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth Depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth Depth, goroutines int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
