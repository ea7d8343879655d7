package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/pandamaske/biibii-sub002/internal/pkg/metrics"
)

// LoggerMiddleware logs every request through log instead of gin's stdout writer
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		switch {
		case param.StatusCode >= http.StatusInternalServerError:
			log.Error("request ", param.Method, " ", param.Path, " status=", param.StatusCode, " latency=", param.Latency, " error=", param.ErrorMessage)
		case param.ErrorMessage != "":
			log.Warn("request ", param.Method, " ", param.Path, " status=", param.StatusCode, " latency=", param.Latency, " error=", param.ErrorMessage)
		default:
			log.Info("request ", param.Method, " ", param.Path, " status=", param.StatusCode, " latency=", param.Latency)
		}
		return ""
	})
}

// MetricsMiddleware records HTTP request counts and durations for Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := fmt.Sprintf("%d", c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}
