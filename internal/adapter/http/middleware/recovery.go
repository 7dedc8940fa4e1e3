package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skysearch/flight-offers-service/internal/adapter/http/response"
)

// Recover turns a panic anywhere in the handler chain into a logged 500 so
// one bad request cannot take the server down. The stack trace goes to the
// log, never to the client.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				msg := fmt.Sprintf("%v", r)
				if err, ok := r.(error); ok {
					msg = err.Error()
				}

				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", msg).
					Str("stack", string(debug.Stack())).
					Msg("Panic recovered")

				if !c.Response().Committed {
					response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
