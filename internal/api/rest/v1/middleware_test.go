//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/pkg/metrics"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	r := newTestEngine()
	r.Use(MetricsMiddleware())
	r.GET("/things/:id", func(ctx *gin.Context) { ctx.Status(http.StatusTeapot) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues("/things/:id", http.MethodGet, "418")
	before := promtestutil.ToFloat64(counter)

	testutil.PerformRequest(t, r, http.MethodGet, "/things/1", nil)
	testutil.PerformRequest(t, r, http.MethodGet, "/things/2", nil)

	assert.Equal(t, before+2, promtestutil.ToFloat64(counter))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	r := newTestEngine()
	r.Use(MetricsMiddleware())

	counter := metrics.HTTPRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
	before := promtestutil.ToFloat64(counter)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	r := newTestEngine()
	r.Use(LoggerMiddleware(testutil.SetupTestLogger(t)))
	r.GET("/ok", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, InfoResponse{Message: "fine"}) })
	r.GET("/boom", func(ctx *gin.Context) { ctx.AbortWithStatus(http.StatusInternalServerError) })

	w := testutil.PerformRequest(t, r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"fine"}`, w.Body.String())

	w = testutil.PerformRequest(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
