package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/games/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/games/:id", "404"))

	for _, path := range []string{"/games/1", "/games/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/games/:id", "404"))
	assert.Equal(t, before+2, after)
	assert.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestMiddleware_InFlightSurvivesPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery(), Middleware())
	r.GET("/games/:id", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	httpRequests.WithLabelValues(http.MethodGet, "/genres", "200").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "gamestore_http_requests_total"))
}
