package middleware

import (
	"errors"
	"net/http"

	"gradePredictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers as {"message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"trace_id", c.Get("trace_id"),
			"path", c.Request().URL.Path,
			err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, echo.Map{"message": msg})
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
