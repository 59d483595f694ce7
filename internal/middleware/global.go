package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/sqlerr"
)

// GlobalMiddlewares bundles the middlewares applied to every route.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares creates the global middleware set.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns the CORS middleware configured from the allowed origins list.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger logs one structured line per request with latency, status
// and correlation fields. The level follows the response status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover converts panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds standard security response headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is echo's central error handler. It normalizes every
// error into an *errs.HTTPError (routing database errors through sqlerr)
// and writes it as JSON.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil)
			} else {
				err = errs.NewInternalServerError()
			}
		} else {
			err = sqlerr.HandleError(err)
		}

		errors.As(err, &httpErr)
	}

	if httpErr.Status >= http.StatusInternalServerError {
		GetLogger(c).Error().
			Err(originalErr).
			Str("request_id", GetRequestID(c)).
			Msg("request failed")

		// Internal details stay in the logs; clients get the generic text.
		// WithMessage copies, so shared error values are never mutated.
		httpErr = httpErr.WithMessage(http.StatusText(httpErr.Status))
	}

	if c.Response().Committed {
		return
	}

	if writeErr := c.JSON(httpErr.Status, httpErr); writeErr != nil {
		global.server.Logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
