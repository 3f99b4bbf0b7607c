package middleware

import (
	"errors"
	"net/http"
	"strings"

	"yabaMarket/pkg/logger"

	jsonres "yabaMarket/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers (unknown routes, bind
// failures, panics caught by Recover) in the shared error shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Request().URL.Path)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	status := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
	_ = c.JSON(code, jsonres.Error(status, message, nil))
}
