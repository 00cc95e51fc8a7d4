package profile

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
}

// StatsSnapshot is a point-in-time aggregate of parse latencies and
// per-field hit counts.
type StatsSnapshot struct {
	Count     int            `json:"count"`
	MinMs     int64          `json:"min_ms"`
	MaxMs     int64          `json:"max_ms"`
	AvgMs     float64        `json:"avg_ms"`
	P50Ms     float64        `json:"p50_ms"`
	P95Ms     float64        `json:"p95_ms"`
	P99Ms     float64        `json:"p99_ms"`
	Total     int            `json:"total_parses"`
	FieldHits map[string]int `json:"field_hits"`
}

// ParseStats tracks parse latencies within a rolling window plus
// cumulative counters for how often each field was actually extracted —
// the practical measure of how the heuristics are doing in production.
type ParseStats struct {
	mu        sync.Mutex
	samples   []sample
	maxAge    time.Duration
	total     int
	fieldHits map[string]int
}

func NewParseStats(maxAge time.Duration) *ParseStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &ParseStats{
		samples:   make([]sample, 0, 256),
		maxAge:    maxAge,
		fieldHits: make(map[string]int),
	}
}

// Observe records one parse call and which fields it managed to fill.
func (s *ParseStats) Observe(durationMs int64, rec *Record) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{timestamp: now, durationMs: durationMs})
	s.total++

	if rec == nil {
		return
	}
	hit := func(field string, ok bool) {
		if ok {
			s.fieldHits[field]++
		}
	}
	hit("name", rec.Name != "")
	hit("credentials", rec.Credentials != "")
	hit("specialty", rec.Specialty != "")
	hit("affiliations", rec.Affiliations != "")
	hit("languages", rec.Languages != "")
	hit("gender", rec.Gender != "")
	hit("academic_title", rec.AcademicTitle != "")
	hit("background", rec.Background != "")
	hit("titles", len(rec.Titles) > 0)
	hit("education", len(rec.Education) > 0)
	hit("certifications", len(rec.Certifications) > 0)
	hit("memberships", len(rec.Memberships) > 0)
	hit("locations", len(rec.Locations) > 0)
}

func (s *ParseStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)

	hits := make(map[string]int, len(s.fieldHits))
	for k, v := range s.fieldHits {
		hits[k] = v
	}
	snap := StatsSnapshot{Total: s.total, FieldHits: hits}
	if len(s.samples) == 0 {
		return snap
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	snap.Count = len(values)
	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (s *ParseStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
