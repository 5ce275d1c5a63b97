package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultFragmentRate is how many fragment requests per second a client may make.
const DefaultFragmentRate = 10

// RateLimiter limits the routes it is applied to per client IP, allowing
// perSecond requests per second with bursts of the same size.
func RateLimiter(perSecond rate.Limit) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store; one instance serves the site.
		Store: middleware.NewRateLimiterMemoryStore(perSecond),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
