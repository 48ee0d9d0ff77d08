package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"TradeView/internal/domain/models"
	domrepo "TradeView/internal/domain/repository"
)

// ExportCSV renders the visible series with its indicator columns as CSV,
// newest row first. Indicator cells still warming up are left empty.
func (uc *DashboardUseCase) ExportCSV(ctx context.Context, symbol string, tf domrepo.Timeframe, days int) ([]byte, error) {
	view, set, err := uc.GetHistory(ctx, symbol, tf, days)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Date", "Open", "High", "Low", "Close", "Volume"}
	var cols []models.NamedColumn
	if set != nil {
		cols = set.Columns()
		for _, c := range cols {
			header = append(header, c.Name)
		}
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	for i := view.Len() - 1; i >= 0; i-- {
		b := view.Bars[i]
		row := []string{
			b.Date.Format("2006-01-02"),
			formatPrice(b.Open),
			formatPrice(b.High),
			formatPrice(b.Low),
			formatPrice(b.Close),
			strconv.FormatInt(b.Volume, 10),
		}
		for _, c := range cols {
			if v := c.Values[i]; v != nil {
				row = append(row, formatPrice(*v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
