package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

const startedAtKey = "started_at"

// Timing records when the request entered the handler chain.
func Timing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(startedAtKey, time.Now())
			return next(c)
		}
	}
}

// StartedAt returns the time stored by Timing, or now if the middleware is not installed.
func StartedAt(c echo.Context) time.Time {
	if t, ok := c.Get(startedAtKey).(time.Time); ok {
		return t
	}
	return time.Now()
}
