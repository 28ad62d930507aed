package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RouteSkipper(routes []string) middleware.Skipper {
	routesMap := map[string]struct{}{}
	for _, route := range routes {
		routesMap[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := routesMap[ec.Path()]
		return ok
	}
}

// WithSkipper bypasses the middleware for requests matched by the skipper
func WithSkipper(m echo.MiddlewareFunc, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := m(next)
		return func(ec echo.Context) error {
			if skipper(ec) {
				return next(ec)
			}
			return wrapped(ec)
		}
	}
}
