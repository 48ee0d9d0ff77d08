package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "TradeView/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover converts a handler panic into a 500 response instead of tearing
// down the connection.
func Recover() echo.MiddlewareFunc {
	l := applogger.NewLogger("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						applogger.Error(err),
						applogger.String("path", c.Request().URL.Path),
						applogger.String("stack", string(debug.Stack())),
					)
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"status":  http.StatusInternalServerError,
						"message": "Internal Server Error",
					})
				}
			}()
			return next(c)
		}
	}
}
