package api

import (
	"errors"

	models "TradeView/internal/domain/models"
	domrepo "TradeView/internal/domain/repository"
	"TradeView/internal/usecase"
	xhttp "TradeView/pkg/http"
	xlogger "TradeView/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler exposes the dashboard pipeline over Echo.
type DashboardEchoHandler struct {
	logger *xlogger.Logger
	uc     *usecase.DashboardUseCase
	cc     domrepo.CacheController
}

func NewDashboardEchoHandler(logger *xlogger.Logger, uc *usecase.DashboardUseCase, cc domrepo.CacheController) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, uc: uc, cc: cc}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/history", h.History)
	g.GET("/forecast", h.Forecast)
	g.GET("/compare", h.Compare)
	g.GET("/export", h.Export)
	g.POST("/cache/clear", h.ClearCache)
}

// domainErrorResponse maps domain sentinels onto HTTP statuses: unknown or
// broken data is 404, a range the data cannot satisfy is 422, anything else
// is 500.
func (h *DashboardEchoHandler) domainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrDataUnavailable), errors.Is(err, models.ErrDataIntegrity):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("symbol data unavailable").WithError(err))
	case errors.Is(err, models.ErrInsufficientRange),
		errors.Is(err, models.ErrInsufficientData),
		errors.Is(err, models.ErrNoOverlap):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError("insufficient_data", err.Error()).WithError(err))
	default:
		return xhttp.AppErrorResponse(c, err)
	}
}

func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.GetDashboard(c.Request().Context(), usecase.GetDashboardParams{
		Symbol:    req.Symbol,
		Compare:   req.Compare,
		Timeframe: domrepo.NormalizeTimeframe(req.TF),
		Days:      req.Days,
	})
	if err != nil {
		h.logger.Error("dashboard usecase error", xlogger.Error(err))
		return h.domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// historyPayload pairs the view series with its indicator columns.
type historyPayload struct {
	Series     models.PriceSeries   `json:"series"`
	Indicators *models.IndicatorSet `json:"indicators,omitempty"`
}

func (h *DashboardEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	series, set, err := h.uc.GetHistory(c.Request().Context(), req.Symbol, domrepo.NormalizeTimeframe(req.TF), req.Days)
	if err != nil {
		h.logger.Error("history usecase error", xlogger.Error(err))
		return h.domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, historyPayload{Series: series, Indicators: set})
}

type forecastPayload struct {
	Forecast models.ForecastResult   `json:"forecast"`
	Insight  *models.ForecastInsight `json:"insight"`
}

func (h *DashboardEchoHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, insight, err := h.uc.GetForecast(c.Request().Context(), req.Symbol, domrepo.NormalizeTimeframe(req.TF), req.Days)
	if err != nil {
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return h.domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, forecastPayload{Forecast: res, Insight: insight})
}

type comparePayload struct {
	Comparison models.ComparisonResult    `json:"comparison"`
	Insight    *models.CorrelationInsight `json:"insight"`
}

func (h *DashboardEchoHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, insight, err := h.uc.GetComparison(c.Request().Context(), req.Symbol, req.Compare, domrepo.NormalizeTimeframe(req.TF), req.Days)
	if err != nil {
		h.logger.Error("compare usecase error", xlogger.Error(err))
		return h.domainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, comparePayload{Comparison: res, Insight: insight})
}

func (h *DashboardEchoHandler) Export(c echo.Context) error {
	req := &models.ExportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	body, err := h.uc.ExportCSV(c.Request().Context(), req.Symbol, domrepo.NormalizeTimeframe(req.TF), req.Days)
	if err != nil {
		h.logger.Error("export usecase error", xlogger.Error(err))
		return h.domainErrorResponse(c, err)
	}
	filename := req.Symbol + "_data.csv"
	return xhttp.AttachmentResponse(c, filename, "text/csv", body)
}

func (h *DashboardEchoHandler) ClearCache(c echo.Context) error {
	if h.cc == nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("cache controller not configured"))
	}
	if err := h.cc.ClearAll(c.Request().Context()); err != nil {
		h.logger.Error("cache clear error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]string{"cache": "cleared"})
}
