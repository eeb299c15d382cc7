// Package performance provides operation-level performance tracking for the
// ACT website server.
package performance

import (
	"fmt"
	"sync"
	"time"
)

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"`       // e.g., "create_project_request"
	StartTime time.Time      `json:"startTime"`       // When the operation started
	EndTime   time.Time      `json:"endTime"`         // When the operation completed
	Duration  time.Duration  `json:"duration"`        // Total operation duration
	Success   bool           `json:"success"`         // Whether the operation completed successfully
	Error     string         `json:"error,omitempty"` // Error message if operation failed
	Metadata  map[string]any `json:"metadata"`        // Additional operation-specific data
	Completed bool           `json:"completed"`       // Whether Complete() has been called
}

// Complete marks the operation as finished and calculates final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return
	}
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError sets an error message and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// Tracker manages performance markers and provides aggregate statistics
type Tracker struct {
	markers    map[string]*Marker
	maxMarkers int
	mu         sync.RWMutex
	started    time.Time
	seq        uint64
}

// NewTracker creates a new performance tracker
func NewTracker() *Tracker {
	return &Tracker{
		markers:    make(map[string]*Marker),
		maxMarkers: 10000,
		started:    time.Now(),
	}
}

// StartOperation begins tracking a new operation and returns its marker
func (t *Tracker) StartOperation(operation string) *Marker {
	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	id := fmt.Sprintf("%s-%d", operation, t.seq)

	// Drop oldest-by-map-iteration when full; exact eviction order doesn't matter here
	if len(t.markers) >= t.maxMarkers {
		for k := range t.markers {
			delete(t.markers, k)
			break
		}
	}
	t.markers[id] = marker

	return marker
}

// Stats summarizes all completed markers
type Stats struct {
	Uptime          time.Duration `json:"uptime"`
	TotalOperations int           `json:"totalOperations"`
	FailedCount     int           `json:"failedCount"`
	AvgDuration     time.Duration `json:"avgDuration"`
	MaxDuration     time.Duration `json:"maxDuration"`
}

// Snapshot returns aggregate statistics over the retained markers
func (t *Tracker) Snapshot() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := Stats{Uptime: time.Since(t.started)}
	var total time.Duration
	for _, m := range t.markers {
		if !m.Completed {
			continue
		}
		stats.TotalOperations++
		total += m.Duration
		if m.Duration > stats.MaxDuration {
			stats.MaxDuration = m.Duration
		}
		if !m.Success {
			stats.FailedCount++
		}
	}
	if stats.TotalOperations > 0 {
		stats.AvgDuration = total / time.Duration(stats.TotalOperations)
	}
	return stats
}
