package metrics

import (
	"github.com/heyvito/lazycoder/internal/metrics"
)

// InstallDelegate registers del as the receiver of instrumentation readings
// produced by cursor and snippet operations. Readings are delivered on the
// goroutine performing the operation. Passing nil removes any installed
// delegate.
func InstallDelegate(del *Delegates) {
	if del == nil {
		metrics.Install(nil)
		return
	}
	metrics.Install(del)
}

// Delegates groups the receivers for each instrumented component. Nil
// members are skipped.
type Delegates struct {
	Cursor  CursorInstrumentationDelegate
	Storage StorageInstrumentationDelegate
	Snippet SnippetInstrumentationDelegate
}

func (d *Delegates) Dispatch(kind metrics.MetricKind, value float64) {
	switch kind {
	case metrics.CursorNextCalls, metrics.CursorNextFailures,
		metrics.CursorPeekCalls, metrics.CursorPeekFailures,
		metrics.CursorForwardCalls, metrics.CursorRewindCalls,
		metrics.CursorRewindFailures:
		if d.Cursor != nil {
			d.dispatchCursor(kind, value)
		}
	case metrics.StorePersistLatency:
		if d.Storage != nil {
			d.Storage.PersistLatency(value)
		}
	case metrics.StorePersistFailures:
		if d.Storage != nil {
			d.Storage.PersistFailures(value)
		}
	case metrics.SnippetReadLatency:
		if d.Snippet != nil {
			d.Snippet.ReadLatency(value)
		}
	case metrics.SnippetReadFailures:
		if d.Snippet != nil {
			d.Snippet.ReadFailures(value)
		}
	case metrics.SnippetSegmentsCount:
		if d.Snippet != nil {
			d.Snippet.SegmentsCount(value)
		}
	}
}

func (d *Delegates) dispatchCursor(kind metrics.MetricKind, value float64) {
	switch kind {
	case metrics.CursorNextCalls:
		d.Cursor.NextCalls(value)
	case metrics.CursorNextFailures:
		d.Cursor.NextFailures(value)
	case metrics.CursorPeekCalls:
		d.Cursor.PeekCalls(value)
	case metrics.CursorPeekFailures:
		d.Cursor.PeekFailures(value)
	case metrics.CursorForwardCalls:
		d.Cursor.ForwardCalls(value)
	case metrics.CursorRewindCalls:
		d.Cursor.RewindCalls(value)
	case metrics.CursorRewindFailures:
		d.Cursor.RewindFailures(value)
	}
}

type CursorInstrumentationDelegate interface {
	NextCalls(float64)
	NextFailures(float64)

	PeekCalls(float64)
	PeekFailures(float64)

	ForwardCalls(float64)

	RewindCalls(float64)
	RewindFailures(float64)
}

type StorageInstrumentationDelegate interface {
	PersistLatency(float64)
	PersistFailures(float64)
}

type SnippetInstrumentationDelegate interface {
	ReadLatency(float64)
	ReadFailures(float64)
	SegmentsCount(float64)
}
