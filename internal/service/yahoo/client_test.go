package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"TradeView/internal/domain/models"
	"TradeView/internal/services/analytics"
)

func chartBody(timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += strconv.FormatInt(t, 10)
	}
	cl := ""
	for i, c := range closes {
		if i > 0 {
			cl += ","
		}
		cl += c
	}
	return `{"chart":{"result":[{"timestamp":[` + ts + `],` +
		`"indicators":{"quote":[{` +
		`"open":[` + cl + `],"high":[` + cl + `],"low":[` + cl + `],` +
		`"close":[` + cl + `],"volume":[` + cl + `]}]}}],"error":null}}`
}

func TestFetchParsesBars(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	timestamps := []int64{day.Unix(), day.AddDate(0, 0, 1).Unix(), day.AddDate(0, 0, 2).Unix()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("interval") != "1d" {
			t.Errorf("interval = %q, want 1d", q.Get("interval"))
		}
		if q.Get("period1") == "" || q.Get("period2") == "" {
			t.Error("missing period1/period2")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chartBody(timestamps, []string{"100", "101", "102"})))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	series, err := c.Fetch(context.Background(), "AAPL", day, day.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if series.Symbol != "AAPL" {
		t.Errorf("symbol = %q", series.Symbol)
	}
	if series.Len() != 3 {
		t.Fatalf("got %d bars, want 3", series.Len())
	}
	if series.Bars[0].Close != 100 || series.Bars[2].Close != 102 {
		t.Errorf("closes = %v, %v", series.Bars[0].Close, series.Bars[2].Close)
	}
	for i := 1; i < series.Len(); i++ {
		if !series.Bars[i-1].Date.Before(series.Bars[i].Date) {
			t.Errorf("bars not ascending at %d", i)
		}
	}
}

func TestFetchSkipsNullBars(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	timestamps := []int64{day.Unix(), day.AddDate(0, 0, 1).Unix(), day.AddDate(0, 0, 2).Unix()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chartBody(timestamps, []string{"100", "null", "102"})))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	series, err := c.Fetch(context.Background(), "AAPL", day, day.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("got %d bars, want 2 after skipping null", series.Len())
	}
	if series.Bars[1].Close != 102 {
		t.Errorf("second close = %v, want 102", series.Bars[1].Close)
	}
}

func TestFetchCollapsesIntradaySessionRows(t *testing.T) {
	// Yahoo appends a second row for the live session on the current day;
	// the client must hand back one bar per calendar day, last row winning.
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	timestamps := []int64{
		day.Add(14*time.Hour + 30*time.Minute).Unix(),
		day.AddDate(0, 0, 1).Add(14*time.Hour + 30*time.Minute).Unix(),
		day.AddDate(0, 0, 1).Add(18*time.Hour + 45*time.Minute).Unix(),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chartBody(timestamps, []string{"100", "101", "102"})))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	series, err := c.Fetch(context.Background(), "AAPL", day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("got %d bars, want 2 after collapsing the live-session row", series.Len())
	}
	for i, b := range series.Bars {
		if !b.Date.Equal(time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, time.UTC)) {
			t.Errorf("bar %d keyed at %s, want midnight UTC", i, b.Date)
		}
	}
	if series.Bars[1].Close != 102 {
		t.Errorf("duplicate day close = %v, want the last session row (102)", series.Bars[1].Close)
	}

	// the collapsed series must pass alignment untouched
	if _, _, err := analytics.Align(series, models.ViewWindow{Start: day, End: day.AddDate(0, 0, 1)}); err != nil {
		t.Fatalf("Align rejected deduplicated series: %v", err)
	}
}

func TestFetchUnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), "NOPE", time.Now().AddDate(0, -1, 0), time.Now())
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestFetchEmptyChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), "AAPL", time.Now().AddDate(0, -1, 0), time.Now())
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestSymbolAliases(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, _ = c.Fetch(context.Background(), "SPX500", time.Now().AddDate(0, -1, 0), time.Now())
	if gotPath != "/v8/finance/chart/%5EGSPC" && gotPath != "/v8/finance/chart/^GSPC" {
		t.Errorf("path = %q, want ^GSPC chart path", gotPath)
	}
}
