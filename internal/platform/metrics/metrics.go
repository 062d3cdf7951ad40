// Package metrics provides observability for the game server.
package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers performance metrics.
type Collector struct {
	// Dispatch metrics
	DispatchCount      int64
	DispatchLatencySum int64 // nanoseconds
	DispatchLatencyMax int64
	DispatchRejected   int64

	// Journal persistence metrics
	EntriesWritten    int64
	EntryWriteLatSum  int64
	EntryWriteErrors  int64

	// WebSocket metrics
	WSConnectionsActive int64
	WSMessagesIn        int64
	WSMessagesOut       int64
	WSErrors            int64

	// System
	StartTime time.Time
	mu        sync.RWMutex
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

// RecordDispatch records an action dispatch completion.
func (c *Collector) RecordDispatch(latency time.Duration, rejected bool) {
	if rejected {
		atomic.AddInt64(&c.DispatchRejected, 1)
		return
	}
	atomic.AddInt64(&c.DispatchCount, 1)
	atomic.AddInt64(&c.DispatchLatencySum, int64(latency))

	// Update max (non-atomic but acceptable for metrics)
	if int64(latency) > atomic.LoadInt64(&c.DispatchLatencyMax) {
		atomic.StoreInt64(&c.DispatchLatencyMax, int64(latency))
	}
}

// RecordEntryWrite records a journal entry write to the database.
func (c *Collector) RecordEntryWrite(latency time.Duration, err error) {
	atomic.AddInt64(&c.EntriesWritten, 1)
	atomic.AddInt64(&c.EntryWriteLatSum, int64(latency))
	if err != nil {
		atomic.AddInt64(&c.EntryWriteErrors, 1)
	}
}

// RecordWSConnection records WebSocket connection changes.
func (c *Collector) RecordWSConnection(delta int64) {
	atomic.AddInt64(&c.WSConnectionsActive, delta)
}

// RecordWSMessage records WebSocket messages.
func (c *Collector) RecordWSMessage(incoming bool) {
	if incoming {
		atomic.AddInt64(&c.WSMessagesIn, 1)
	} else {
		atomic.AddInt64(&c.WSMessagesOut, 1)
	}
}

// RecordWSError records a WebSocket error.
func (c *Collector) RecordWSError() {
	atomic.AddInt64(&c.WSErrors, 1)
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dispatches := atomic.LoadInt64(&c.DispatchCount)
	entries := atomic.LoadInt64(&c.EntriesWritten)

	var dispatchAvg, entryAvg float64
	if dispatches > 0 {
		dispatchAvg = float64(atomic.LoadInt64(&c.DispatchLatencySum)) / float64(dispatches) / 1e6 // ms
	}
	if entries > 0 {
		entryAvg = float64(atomic.LoadInt64(&c.EntryWriteLatSum)) / float64(entries) / 1e6
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"dispatch": map[string]interface{}{
			"count":          dispatches,
			"rejected":       atomic.LoadInt64(&c.DispatchRejected),
			"avg_latency_ms": dispatchAvg,
			"max_latency_ms": float64(atomic.LoadInt64(&c.DispatchLatencyMax)) / 1e6,
		},

		"journal": map[string]interface{}{
			"written":          entries,
			"avg_write_lat_ms": entryAvg,
			"errors":           atomic.LoadInt64(&c.EntryWriteErrors),
		},

		"websocket": map[string]interface{}{
			"active_connections": atomic.LoadInt64(&c.WSConnectionsActive),
			"messages_in":        atomic.LoadInt64(&c.WSMessagesIn),
			"messages_out":       atomic.LoadInt64(&c.WSMessagesOut),
			"errors":             atomic.LoadInt64(&c.WSErrors),
		},
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")

		snapshot := collector.Snapshot()
		json.NewEncoder(w).Encode(snapshot)
	}
}

// PrometheusHandler returns metrics in Prometheus format.
func PrometheusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		c := collector

		fmt.Fprintf(w, "# HELP derby_dispatch_count Total dispatched actions\n")
		fmt.Fprintf(w, "# TYPE derby_dispatch_count counter\n")
		fmt.Fprintf(w, "derby_dispatch_count %d\n\n", atomic.LoadInt64(&c.DispatchCount))

		fmt.Fprintf(w, "# HELP derby_dispatch_rejected Total rejected dispatch requests\n")
		fmt.Fprintf(w, "# TYPE derby_dispatch_rejected counter\n")
		fmt.Fprintf(w, "derby_dispatch_rejected %d\n\n", atomic.LoadInt64(&c.DispatchRejected))

		fmt.Fprintf(w, "# HELP derby_journal_written Total journal entries persisted\n")
		fmt.Fprintf(w, "# TYPE derby_journal_written counter\n")
		fmt.Fprintf(w, "derby_journal_written %d\n\n", atomic.LoadInt64(&c.EntriesWritten))

		fmt.Fprintf(w, "# HELP derby_journal_write_errors Total journal write errors\n")
		fmt.Fprintf(w, "# TYPE derby_journal_write_errors counter\n")
		fmt.Fprintf(w, "derby_journal_write_errors %d\n\n", atomic.LoadInt64(&c.EntryWriteErrors))

		fmt.Fprintf(w, "# HELP derby_ws_active_connections Active websocket clients\n")
		fmt.Fprintf(w, "# TYPE derby_ws_active_connections gauge\n")
		fmt.Fprintf(w, "derby_ws_active_connections %d\n", atomic.LoadInt64(&c.WSConnectionsActive))
	}
}
