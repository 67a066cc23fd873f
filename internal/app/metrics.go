package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics counts event loop activity. The loop records into it and the
// totals are logged at exit.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64

	serverChunks   atomic.Uint64
	completions    atomic.Uint64
	staleResponses atomic.Uint64
	fileEvents     atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records the handling time of one terminal event.
func (m *Metrics) RecordInput(d time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(d.Nanoseconds())
}

// RecordServerChunk counts one read from the language server.
func (m *Metrics) RecordServerChunk() { m.serverChunks.Add(1) }

// RecordCompletion counts a completion response, split by whether it was
// still pending when it arrived.
func (m *Metrics) RecordCompletion(applied bool) {
	if applied {
		m.completions.Add(1)
	} else {
		m.staleResponses.Add(1)
	}
}

// RecordFileEvent counts one change notification for an open file.
func (m *Metrics) RecordFileEvent() { m.fileEvents.Add(1) }

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     m.frameCount.Load(),
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		InputCount:     m.inputCount.Load(),
		ServerChunks:   m.serverChunks.Load(),
		Completions:    m.completions.Load(),
		StaleResponses: m.staleResponses.Load(),
		FileEvents:     m.fileEvents.Load(),
	}
	if s.FrameCount > 0 {
		s.AvgFrameTimeNs = m.frameTotalNs.Load() / int64(s.FrameCount)
	}
	if s.InputCount > 0 {
		s.AvgInputTimeNs = m.inputTotalNs.Load() / int64(s.InputCount)
	}
	return s
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MaxFrameTimeNs int64
	InputCount     uint64
	AvgInputTimeNs int64
	ServerChunks   uint64
	Completions    uint64
	StaleResponses uint64
	FileEvents     uint64
}

func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg_frame=%s max_frame=%s inputs=%d avg_input=%s "+
		"server_chunks=%d completions=%d stale=%d file_events=%d",
		s.Uptime.Round(time.Millisecond), s.FrameCount,
		time.Duration(s.AvgFrameTimeNs), time.Duration(s.MaxFrameTimeNs),
		s.InputCount, time.Duration(s.AvgInputTimeNs),
		s.ServerChunks, s.Completions, s.StaleResponses, s.FileEvents)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
