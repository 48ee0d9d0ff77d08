package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"TradeView/internal/domain/models"
	drepo "TradeView/internal/domain/repository"
	apphttp "TradeView/pkg/http"
	applogger "TradeView/pkg/logger"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client implements a MarketDataSource backed by the Yahoo Finance v8
// chart API.
type Client struct {
	baseURL   string
	http      *apphttp.Client
	logger    *applogger.Logger
	symbolMap map[string]string // maps common aliases to Yahoo tickers
}

// Option configures Client.
type Option func(*Client)

// New creates a new Yahoo market data source.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    apphttp.NewClient(),
		logger:  applogger.NewLogger("yahoo"),
		symbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the API host, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *apphttp.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger.
func WithLogger(l *applogger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func (c *Client) yahooSymbol(symbol string) string {
	if mapped, ok := c.symbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// chartResponse is the response structure from the Yahoo chart API. OHLCV
// columns use pointers because Yahoo emits JSON null for holiday rows.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Fetch returns daily bars for symbol in [start, end], keyed on calendar
// days: one bar per day, sorted ascending. Yahoo emits an extra row for the
// live session on the current day; the last row per day wins. Provider
// errors and unknown symbols map to models.ErrDataUnavailable.
func (c *Client) Fetch(ctx context.Context, symbol string, start, end time.Time) (models.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(c.yahooSymbol(symbol)))

	var chart chartResponse
	err := c.http.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodGet,
		URL:    u,
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"period1":  {strconv.FormatInt(start.Unix(), 10)},
			"period2":  {strconv.FormatInt(end.Add(24 * time.Hour).Unix(), 10)},
			"events":   {"history"},
		},
	}, &chart)
	if err != nil {
		c.logger.Warn("chart request failed",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return models.PriceSeries{}, fmt.Errorf("%w: %s: %v", models.ErrDataUnavailable, symbol, err)
	}

	if chart.Chart.Error != nil {
		return models.PriceSeries{}, fmt.Errorf("%w: %s: %s",
			models.ErrDataUnavailable, symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 ||
		len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return models.PriceSeries{}, fmt.Errorf("%w: %s: empty chart", models.ErrDataUnavailable, symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]models.PriceBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bar (holiday, halted session)
		}
		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		bars = append(bars, models.PriceBar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   deref(at(quote.Open, i)),
			High:   deref(at(quote.High, i)),
			Low:    deref(at(quote.Low, i)),
			Close:  *quote.Close[i],
			Volume: vol,
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	bars = collapseToCalendarDays(bars)

	c.logger.Debug("chart fetched",
		applogger.String("symbol", symbol),
		applogger.Int("bars", len(bars)),
	)

	return models.PriceSeries{Symbol: symbol, Bars: bars}, nil
}

// collapseToCalendarDays strips time-of-day from sorted bars and collapses
// rows sharing a calendar day into the last one.
func collapseToCalendarDays(bars []models.PriceBar) []models.PriceBar {
	out := bars[:0]
	for _, b := range bars {
		y, m, d := b.Date.UTC().Date()
		b.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if n := len(out); n > 0 && out[n-1].Date.Equal(b.Date) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

func at(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}

var _ drepo.MarketDataSource = (*Client)(nil)
