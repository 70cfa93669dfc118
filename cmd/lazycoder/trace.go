package main

import (
	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/lazycoder/metrics"
)

// traceDelegate logs every instrumentation reading. Latencies are reported in
// microseconds.
type traceDelegate struct {
	log stdlog.Logger
}

func newTraceDelegates(log stdlog.Logger) *metrics.Delegates {
	d := &traceDelegate{log: log.Named("metrics")}
	return &metrics.Delegates{Cursor: d, Storage: d, Snippet: d}
}

func (t *traceDelegate) reading(name string, value float64) {
	t.log.Debug("Reading", "metric", name, "value", value)
}

func (t *traceDelegate) NextCalls(v float64)       { t.reading("cursor.next.calls", v) }
func (t *traceDelegate) NextFailures(v float64)    { t.reading("cursor.next.failures", v) }
func (t *traceDelegate) PeekCalls(v float64)       { t.reading("cursor.peek.calls", v) }
func (t *traceDelegate) PeekFailures(v float64)    { t.reading("cursor.peek.failures", v) }
func (t *traceDelegate) ForwardCalls(v float64)    { t.reading("cursor.forward.calls", v) }
func (t *traceDelegate) RewindCalls(v float64)     { t.reading("cursor.rewind.calls", v) }
func (t *traceDelegate) RewindFailures(v float64)  { t.reading("cursor.rewind.failures", v) }
func (t *traceDelegate) PersistLatency(v float64)  { t.reading("storage.persist.latency_us", v) }
func (t *traceDelegate) PersistFailures(v float64) { t.reading("storage.persist.failures", v) }
func (t *traceDelegate) ReadLatency(v float64)     { t.reading("snippet.read.latency_us", v) }
func (t *traceDelegate) ReadFailures(v float64)    { t.reading("snippet.read.failures", v) }
func (t *traceDelegate) SegmentsCount(v float64)   { t.reading("snippet.segments", v) }
