package profile

import (
	"testing"
	"time"
)

func TestParseStats_SnapshotAggregates(t *testing.T) {
	s := NewParseStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40} {
		s.Observe(ms, nil)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Errorf("expected count 4, got %d", snap.Count)
	}
	if snap.Total != 4 {
		t.Errorf("expected total 4, got %d", snap.Total)
	}
	if snap.MinMs != 10 || snap.MaxMs != 40 {
		t.Errorf("expected min 10 max 40, got min %d max %d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 25 {
		t.Errorf("expected avg 25, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 25 {
		t.Errorf("expected p50 25, got %f", snap.P50Ms)
	}
}

func TestParseStats_FieldHits(t *testing.T) {
	s := NewParseStats(time.Hour)
	s.Observe(5, &Record{Name: "Jane Smith", Languages: "English"})
	s.Observe(5, &Record{Name: "John Doe"})
	s.Observe(5, &Record{})

	snap := s.Snapshot()
	if snap.FieldHits["name"] != 2 {
		t.Errorf("expected 2 name hits, got %d", snap.FieldHits["name"])
	}
	if snap.FieldHits["languages"] != 1 {
		t.Errorf("expected 1 languages hit, got %d", snap.FieldHits["languages"])
	}
	if snap.FieldHits["specialty"] != 0 {
		t.Errorf("expected 0 specialty hits, got %d", snap.FieldHits["specialty"])
	}
}

func TestParseStats_NegativeDurationClamped(t *testing.T) {
	s := NewParseStats(time.Hour)
	s.Observe(-7, nil)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap.MinMs)
	}
}

func TestParseStats_WindowPrunesButTotalPersists(t *testing.T) {
	s := NewParseStats(10 * time.Millisecond)
	s.Observe(100, nil)
	time.Sleep(25 * time.Millisecond)
	s.Observe(200, nil)

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Errorf("expected 1 sample in window, got %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected the old sample pruned, got min %d", snap.MinMs)
	}
	if snap.Total != 2 {
		t.Errorf("cumulative total must survive pruning, got %d", snap.Total)
	}
}

func TestParseStats_EmptySnapshot(t *testing.T) {
	snap := NewParseStats(time.Hour).Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero-valued snapshot, got %+v", snap)
	}
	if snap.FieldHits == nil {
		t.Error("field hits map must be non-nil")
	}
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}
	cases := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{50, 30},
		{100, 50},
		{25, 20},
	}
	for _, tc := range cases {
		if got := percentile(values, tc.pct); got != tc.want {
			t.Errorf("percentile(%v) = %f, want %f", tc.pct, got, tc.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile of empty slice = %f, want 0", got)
	}
}
