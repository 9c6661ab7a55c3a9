package trigpt

import (
	"fmt"
	"io"
	"log"
)

// EventSource feeds events into a Task one at a time. Next returns io.EOF
// when the source is exhausted.
type EventSource interface {
	Next() (*EventRecord, error)
}

// SliceSource is an EventSource over an in-memory event slice.
type SliceSource struct {
	Events []*EventRecord
	next   int
}

func (s *SliceSource) Next() (*EventRecord, error) {
	if s.next >= len(s.Events) {
		return nil, io.EOF
	}
	ev := s.Events[s.next]
	s.next++
	return ev, nil
}

// Task owns a histogram sink and a set of analysis components and drives
// them over an event source. It replaces the manager/container wiring of the
// original framework with explicit ownership: the sink belongs to the task,
// components only write to it through fills.
type Task struct {
	sink       *HistogramSink
	binning    BinningConfig
	components []AnalysisComponent

	initialized bool
}

// NewTask returns a task with an empty sink and the given binning
// configuration.
func NewTask(binning BinningConfig) *Task {
	return &Task{
		sink:    NewHistogramSink(),
		binning: binning,
	}
}

// Sink exposes the task-owned histogram sink, for projections after a run.
func (t *Task) Sink() *HistogramSink { return t.sink }

// AddComponent registers a component. Must be called before Init.
func (t *Task) AddComponent(c AnalysisComponent) {
	t.components = append(t.components, c)
}

// Init creates the histograms of every component. The first configuration
// error aborts initialization.
func (t *Task) Init() error {
	for _, c := range t.components {
		if err := c.CreateHistos(t.sink, t.binning); err != nil {
			return fmt.Errorf("%s: creating histograms: %w", c.Name(), err)
		}
	}
	t.initialized = true
	return nil
}

// Run feeds every event of src through every component, in order, and
// returns the number of events processed. Per-event configuration errors are
// logged and processing continues with the next event; source errors abort
// the run.
func (t *Task) Run(src EventSource) (int, error) {
	if !t.initialized {
		return 0, fmt.Errorf("task not initialized")
	}

	n := 0
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("reading event %d: %w", n, err)
		}

		for _, c := range t.components {
			if perr := c.Process(ev); perr != nil {
				log.Printf("%s: event %d: %v", c.Name(), n, perr)
			}
		}
		n++
	}
}
