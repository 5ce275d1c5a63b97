package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedEcho(perSecond rate.Limit) *echo.Echo {
	e := echo.New()
	e.GET("/sections/:name", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("name"))
	}, RateLimiter(perSecond))
	return e
}

func fragment(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/sections/about", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBurst(t *testing.T) {
	tests := []struct {
		name      string
		perSecond rate.Limit
	}{
		{name: "default fragment rate", perSecond: DefaultFragmentRate},
		{name: "tight rate", perSecond: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(tt.perSecond)
			burst := int(tt.perSecond)

			var codes []int
			for i := 0; i < burst+1; i++ {
				codes = append(codes, fragment(e, "198.51.100.7:5000").Code)
			}

			for i := 0; i < burst; i++ {
				assert.Equal(t, http.StatusOK, codes[i], "request %d is within the burst", i+1)
			}
			assert.Equal(t, http.StatusTooManyRequests, codes[burst])
		})
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	e := newLimitedEcho(1)

	assert.Equal(t, http.StatusOK, fragment(e, "198.51.100.1:5000").Code)
	denied := fragment(e, "198.51.100.1:5001")
	assert.Equal(t, http.StatusTooManyRequests, denied.Code, "same IP on another port shares the budget")
	assert.Contains(t, denied.Body.String(), "Too many requests")

	assert.Equal(t, http.StatusOK, fragment(e, "198.51.100.2:5000").Code, "another client has its own budget")
}
