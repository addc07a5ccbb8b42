package middleware

import (
	"gradePredictor/business/grading"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestTrace tags every request with an X-Request-ID, reusing the caller's
// id when present, and stores it in the request context for service logs.
func RequestTrace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(echo.HeaderXRequestID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, traceID)
			c.Set("trace_id", traceID)
			c.SetRequest(req.WithContext(grading.WithTraceID(req.Context(), traceID)))

			return next(c)
		}
	}
}
