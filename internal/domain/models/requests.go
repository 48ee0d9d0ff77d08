package models

// Requests for dashboard HTTP endpoints. Defined in domain for consistency and reuse.

// DashboardRequest drives the full dashboard recomputation. Days, when set,
// overrides the enumerated timeframe with a raw day count.
type DashboardRequest struct {
	Symbol  string `query:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	Compare string `query:"compare" json:"compare" validate:"omitempty,min=1,max=12"`
	TF      string `query:"tf" json:"tf" default:"1Y" validate:"oneof=1M 3M 6M YTD 1Y 3Y 5Y Max"`
	Days    int    `query:"days" json:"days" validate:"gte=0,lte=20000"`
}

// HistoryRequest returns the view-sliced OHLCV plus indicator columns.
type HistoryRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	TF     string `query:"tf" json:"tf" default:"1Y" validate:"oneof=1M 3M 6M YTD 1Y 3Y 5Y Max"`
	Days   int    `query:"days" json:"days" validate:"gte=0,lte=20000"`
}

// ForecastRequest fits the trend line over the visible range.
type ForecastRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	TF     string `query:"tf" json:"tf" default:"1Y" validate:"oneof=1M 3M 6M YTD 1Y 3Y 5Y Max"`
	Days   int    `query:"days" json:"days" validate:"gte=0,lte=20000"`
}

// CompareRequest aligns two symbols over the visible range.
type CompareRequest struct {
	Symbol  string `query:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	Compare string `query:"compare" json:"compare" validate:"required,min=1,max=12"`
	TF      string `query:"tf" json:"tf" default:"1Y" validate:"oneof=1M 3M 6M YTD 1Y 3Y 5Y Max"`
	Days    int    `query:"days" json:"days" validate:"gte=0,lte=20000"`
}

// ExportRequest downloads the annotated series as CSV, newest first.
type ExportRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	TF     string `query:"tf" json:"tf" default:"1Y" validate:"oneof=1M 3M 6M YTD 1Y 3Y 5Y Max"`
	Days   int    `query:"days" json:"days" validate:"gte=0,lte=20000"`
}
