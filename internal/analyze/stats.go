package analyze

import (
	"sort"
	"sync"
	"time"
)

// StatsSnapshot is a point-in-time aggregate of analysis call
// latencies, served on the stats endpoint.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

type latencySample struct {
	at time.Time
	ms int64
}

// LLMStats aggregates analysis call durations over a sliding window.
// Samples older than the window fall out on the next Record or
// Snapshot; a paper analysis takes seconds, so the sample set stays
// small and is summarized on demand rather than pre-bucketed.
type LLMStats struct {
	mu     sync.Mutex
	window time.Duration
	recent []latencySample
}

func NewLLMStats(window time.Duration) *LLMStats {
	if window <= 0 {
		window = time.Hour
	}
	return &LLMStats{
		window: window,
		recent: make([]latencySample, 0, 256),
	}
}

// Record adds one call duration. Negative durations count as zero.
func (s *LLMStats) Record(d time.Duration) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired(now)
	s.recent = append(s.recent, latencySample{at: now, ms: ms})
}

func (s *LLMStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired(now)
	if len(s.recent) == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, 0, len(s.recent))
	var sum int64
	for _, ls := range s.recent {
		values = append(values, ls.ms)
		sum += ls.ms
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

func (s *LLMStats) evictExpired(now time.Time) {
	cutoff := now.Add(-s.window)
	keep := s.recent[:0]
	for _, ls := range s.recent {
		if !ls.at.Before(cutoff) {
			keep = append(keep, ls)
		}
	}
	s.recent = keep
}

// percentile interpolates linearly between the two samples straddling
// the requested rank.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	rank := (float64(len(sorted)-1) * pct) / 100.0
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + (float64(sorted[hi])-float64(sorted[lo]))*frac
}
