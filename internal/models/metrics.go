package models

import "time"

// SystemMetrics is a lightweight snapshot of engine health for API consumption.
type SystemMetrics struct {
	CacheHitRatio           float64   `json:"cache_hit_ratio"`
	CacheHits               uint64    `json:"cache_hits"`
	CacheMisses             uint64    `json:"cache_misses"`
	RequestsTotal           uint64    `json:"requests_total"`
	SearchesTotal           uint64    `json:"searches_total"`
	EmptySearchesTotal      uint64    `json:"empty_searches_total"`
	SupersededTotal         uint64    `json:"superseded_total"`
	AverageSearchDurationMs float64   `json:"average_search_duration_ms"`
	Goroutines              int       `json:"goroutines"`
	GeneratedAt             time.Time `json:"generated_at"`
}
