package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/frankli0324/go-rest/internal"
	"github.com/frankli0324/go-rest/internal/model"
)

// Metrics counts calls by method and status class and observes their
// duration. metrics register on reg at construction, so build one Metrics
// per registry.
func Metrics(reg prometheus.Registerer) internal.Middleware {
	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "rest",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total transport calls by method and status class.",
	}, []string{"method", "status"})
	duration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rest",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Transport call duration in seconds.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method"})

	return func(next model.Transport) model.Transport {
		return func(ctx context.Context, address string, req *model.Request) (*model.Response, error) {
			start := time.Now()
			resp, err := next(ctx, address, req)
			duration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
			if err != nil {
				requests.WithLabelValues(req.Method, "error").Inc()
				return nil, err
			}
			requests.WithLabelValues(req.Method, statusClass(resp.StatusCode)).Inc()
			return resp, nil
		}
	}
}

func statusClass(status int) string {
	switch {
	case status >= 200 && status <= 299:
		return "2xx"
	case status >= 300 && status <= 399:
		return "3xx"
	case status >= 400 && status <= 499:
		return "4xx"
	case status >= 500 && status <= 599:
		return "5xx"
	}
	return "other"
}
