package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the dispatcher did. All methods are safe for
// concurrent use.
type Metrics struct {
	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMinNs   atomic.Int64
	renderMaxNs   atomic.Int64

	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	inputDropped atomic.Uint64
	viewChanges  atomic.Uint64

	// Config reloads
	reloads        atomic.Uint64
	reloadFailures atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so the first render will be smaller
	m.renderMinNs.Store(1<<63 - 1)
	return m
}

// RecordRender records how long one render and flush took.
func (m *Metrics) RecordRender(d time.Duration) {
	ns := d.Nanoseconds()

	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMinNs.Load()
		if ns >= old || m.renderMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records event handling time.
func (m *Metrics) RecordEvent(d time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(d.Nanoseconds())
}

// RecordInputDropped records a key event that was not a press.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordViewChange records a switch of the active view.
func (m *Metrics) RecordViewChange() {
	m.viewChanges.Add(1)
}

// RecordReload records a config reload and whether it applied fully.
func (m *Metrics) RecordReload(ok bool) {
	m.reloads.Add(1)
	if !ok {
		m.reloadFailures.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renderCount := m.renderCount.Load()
	eventCount := m.eventCount.Load()

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	minRenderNs := m.renderMinNs.Load()
	if minRenderNs == 1<<63-1 {
		minRenderNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		RenderCount:    renderCount,
		AvgRenderNs:    avgRenderNs,
		MinRenderNs:    minRenderNs,
		MaxRenderNs:    m.renderMaxNs.Load(),
		EventCount:     eventCount,
		AvgEventNs:     avgEventNs,
		InputDropped:   m.inputDropped.Load(),
		ViewChanges:    m.viewChanges.Load(),
		Reloads:        m.reloads.Load(),
		ReloadFailures: m.reloadFailures.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	RenderCount    uint64
	AvgRenderNs    int64
	MinRenderNs    int64
	MaxRenderNs    int64
	EventCount     uint64
	AvgEventNs     int64
	InputDropped   uint64
	ViewChanges    uint64
	Reloads        uint64
	ReloadFailures uint64
}
