package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"TradeView/internal/domain/models"
	"TradeView/pkg/cache"
)

type countingSource struct {
	calls int
	fail  error
}

func (c *countingSource) Fetch(_ context.Context, symbol string, start, end time.Time) (models.PriceSeries, error) {
	c.calls++
	if c.fail != nil {
		return models.PriceSeries{}, c.fail
	}
	return models.PriceSeries{
		Symbol: symbol,
		Bars: []models.PriceBar{
			{Date: start, Close: 100},
			{Date: end, Close: 110},
		},
	}, nil
}

func window() (time.Time, time.Time) {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestFetchCachesSeries(t *testing.T) {
	src := &countingSource{}
	mem := cache.NewMemoryCache()
	defer mem.Close()
	cs := New(src, mem, WithRateLimit(100, 100))

	start, end := window()
	first, err := cs.Fetch(context.Background(), "AAPL", start, end)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := cs.Fetch(context.Background(), "AAPL", start, end)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("provider called %d times, want 1", src.calls)
	}
	if first.Len() != second.Len() || first.Bars[0].Close != second.Bars[0].Close {
		t.Error("cached series differs from fetched series")
	}
}

func TestFetchKeyIncludesRange(t *testing.T) {
	src := &countingSource{}
	mem := cache.NewMemoryCache()
	defer mem.Close()
	cs := New(src, mem, WithRateLimit(100, 100))

	start, end := window()
	if _, err := cs.Fetch(context.Background(), "AAPL", start, end); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Fetch(context.Background(), "AAPL", start.AddDate(0, 1, 0), end); err != nil {
		t.Fatal(err)
	}
	if src.calls != 2 {
		t.Fatalf("provider called %d times, want 2 for distinct ranges", src.calls)
	}
}

func TestFetchErrorNotCached(t *testing.T) {
	src := &countingSource{fail: models.ErrDataUnavailable}
	mem := cache.NewMemoryCache()
	defer mem.Close()
	cs := New(src, mem, WithRateLimit(100, 100))

	start, end := window()
	if _, err := cs.Fetch(context.Background(), "NOPE", start, end); !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}

	src.fail = nil
	if _, err := cs.Fetch(context.Background(), "NOPE", start, end); err != nil {
		t.Fatalf("retry after provider recovery: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("provider called %d times, want 2 (errors must not be cached)", src.calls)
	}
}

type recordingMetrics struct {
	fetches int
	hits    int
	misses  int
	errors  int
}

func (r *recordingMetrics) RecordFetch(string, string) {}
func (r *recordingMetrics) RecordCache(result string) {
	switch result {
	case "hit":
		r.hits++
	case "miss":
		r.misses++
	}
}
func (r *recordingMetrics) RecordError(string)              { r.errors++ }
func (r *recordingMetrics) RecordLastPrice(string, float64) {}
func (r *recordingMetrics) RecordLatency(string, float64)   { r.fetches++ }

func TestFetchRecordsHitAndMiss(t *testing.T) {
	src := &countingSource{}
	mem := cache.NewMemoryCache()
	defer mem.Close()
	rec := &recordingMetrics{}
	cs := New(src, mem, WithRateLimit(100, 100), WithMetrics(rec))

	start, end := window()
	if _, err := cs.Fetch(context.Background(), "AAPL", start, end); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Fetch(context.Background(), "AAPL", start, end); err != nil {
		t.Fatal(err)
	}

	if rec.misses != 1 {
		t.Errorf("miss count = %d, want 1", rec.misses)
	}
	if rec.hits != 1 {
		t.Errorf("hit count = %d, want 1", rec.hits)
	}
	if rec.fetches != 1 {
		t.Errorf("provider latency recorded %d times, want 1", rec.fetches)
	}
}

func TestClearAllForcesRefetch(t *testing.T) {
	src := &countingSource{}
	mem := cache.NewMemoryCache()
	defer mem.Close()
	cs := New(src, mem, WithRateLimit(100, 100))

	start, end := window()
	if _, err := cs.Fetch(context.Background(), "AAPL", start, end); err != nil {
		t.Fatal(err)
	}
	if err := cs.ClearAll(context.Background()); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if _, err := cs.Fetch(context.Background(), "AAPL", start, end); err != nil {
		t.Fatal(err)
	}
	if src.calls != 2 {
		t.Fatalf("provider called %d times, want 2 after clear", src.calls)
	}
}
