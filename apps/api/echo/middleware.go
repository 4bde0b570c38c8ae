package echoapi

import (
	"sync"

	"github.com/labstack/echo/v4"
)

// serializeMiddleware runs the wrapped handlers one at a time.
// student.Store does no locking of its own.
func serializeMiddleware(mu *sync.Mutex) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			mu.Lock()
			defer mu.Unlock()
			return next(ctx)
		}
	}
}
