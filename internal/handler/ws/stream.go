package ws

import (
	"context"
	"net/http"
	"strings"
	"time"

	"TradeView/internal/usecase"
	xlogger "TradeView/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// quoteFrame is one pushed quote update.
type quoteFrame struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	Change float64   `json:"change"`
	Time   time.Time `json:"time"`
}

// QuoteStreamHandler pushes the latest quote for one symbol over a websocket
// on a fixed interval. Prices come through the cached source, so a fleet of
// clients on the same symbol costs one provider call per TTL.
type QuoteStreamHandler struct {
	logger   *xlogger.Logger
	uc       *usecase.DashboardUseCase
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewQuoteStreamHandler(logger *xlogger.Logger, uc *usecase.DashboardUseCase, interval time.Duration) *QuoteStreamHandler {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &QuoteStreamHandler{
		logger:   logger,
		uc:       uc,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *QuoteStreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/quotes", h.Stream)
}

func (h *QuoteStreamHandler) Stream(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.QueryParam("symbol")))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "symbol required"})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.logger.Info("quote stream opened", xlogger.String("symbol", symbol))

	// drain control frames so close from the client is noticed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := c.Request().Context()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	// first frame immediately, then on the interval
	if err := h.push(ctx, conn, symbol); err != nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			h.logger.Debug("quote stream closed by client", xlogger.String("symbol", symbol))
			return nil
		case <-ticker.C:
			if err := h.push(ctx, conn, symbol); err != nil {
				h.logger.Debug("quote stream write failed",
					xlogger.String("symbol", symbol), xlogger.Error(err))
				return nil
			}
		}
	}
}

func (h *QuoteStreamHandler) push(ctx context.Context, conn *websocket.Conn, symbol string) error {
	q, err := h.uc.LatestQuote(ctx, symbol)
	if err != nil {
		// transient provider trouble; keep the stream open
		h.logger.Warn("quote fetch failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		return nil
	}
	return conn.WriteJSON(quoteFrame{
		Symbol: q.Symbol,
		Price:  q.Price,
		Change: q.Change,
		Time:   time.Now().UTC(),
	})
}
