package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"TradeView/internal/domain/models"
	domrepo "TradeView/internal/domain/repository"
)

func TestExportCSVShape(t *testing.T) {
	end := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{series: map[string]models.PriceSeries{
		"AAPL": dailySeries("AAPL", end, 400, func(i int) float64 { return 100 + float64(i) }),
	}}
	uc := newTestUseCase(src)

	out, err := uc.ExportCSV(context.Background(), "AAPL", domrepo.TF1M, 0)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(out))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("got %d rows", len(rows))
	}

	wantHeader := []string{
		"Date", "Open", "High", "Low", "Close", "Volume",
		models.ColSMA20, models.ColSMA50, models.ColSMA200,
		models.ColBBUpper, models.ColBBLower, models.ColRSI14,
	}
	header := rows[0]
	if len(header) != len(wantHeader) {
		t.Fatalf("header has %d columns, want %d", len(header), len(wantHeader))
	}
	for i, h := range wantHeader {
		if header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, header[i], h)
		}
	}

	// newest first
	first, err1 := time.Parse("2006-01-02", rows[1][0])
	second, err2 := time.Parse("2006-01-02", rows[2][0])
	if err1 != nil || err2 != nil {
		t.Fatalf("unparseable dates %q %q", rows[1][0], rows[2][0])
	}
	if !first.After(second) {
		t.Errorf("rows not newest-first: %s then %s", rows[1][0], rows[2][0])
	}
	if rows[1][0] != "2024-06-14" {
		t.Errorf("first data row = %q, want last trading day", rows[1][0])
	}
}

func TestExportCSVEmptyCellsForWarmup(t *testing.T) {
	end := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	// 30 bars total: SMA200 never warms up, so its column must stay empty
	src := &fakeSource{series: map[string]models.PriceSeries{
		"THIN": dailySeries("THIN", end, 30, func(i int) float64 { return 50 + float64(i) }),
	}}
	uc := newTestUseCase(src)

	out, err := uc.ExportCSV(context.Background(), "THIN", domrepo.TF1M, 0)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	sma200Col := 8
	for _, row := range rows[1:] {
		if row[sma200Col] != "" {
			t.Fatalf("SMA200 cell = %q, want empty during warm-up", row[sma200Col])
		}
	}
	// closes always present
	for _, row := range rows[1:] {
		if row[4] == "" {
			t.Fatal("empty close cell")
		}
	}
}
