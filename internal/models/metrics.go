package models

import "time"

// SystemMetrics is a lightweight aggregate of runtime counters served to
// operators alongside the Prometheus endpoint.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RealtimeClients          int64     `json:"realtime_clients"`
	EventsBroadcast          uint64    `json:"events_broadcast"`
	EventsDropped            uint64    `json:"events_dropped"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
