package metrics

import (
	"sync/atomic"
	"time"
)

type MetricKind int

const (
	CursorNextCalls MetricKind = iota
	CursorNextFailures
	CursorPeekCalls
	CursorPeekFailures
	CursorForwardCalls
	CursorRewindCalls
	CursorRewindFailures
	StorePersistLatency
	StorePersistFailures
	SnippetReadLatency
	SnippetReadFailures
	SnippetSegmentsCount
)

type delegate interface {
	Dispatch(kind MetricKind, value float64)
}

var current atomic.Pointer[delegate]

// Install sets the receiver of all readings. Passing nil stops dispatching.
func Install(del delegate) {
	if del == nil {
		current.Store(nil)
		return
	}
	current.Store(&del)
}

// Simple delivers a reading to the installed delegate, if any, on the
// calling goroutine.
func Simple(kind MetricKind, value float64) {
	del := current.Load()
	if del == nil {
		return
	}
	(*del).Dispatch(kind, value)
}

func Measure(kind MetricKind) func() {
	start := time.Now()
	return func() {
		Simple(kind, float64(time.Since(start).Microseconds()))
	}
}
