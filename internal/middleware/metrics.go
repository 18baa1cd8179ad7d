package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"hospital-scheduler/internal/metrics"
)

func Metrics(m *metrics.Collector) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		m.InFlightGauge.Inc()
		defer m.InFlightGauge.Dec()

		start := time.Now()
		resp, err := next(ctx, req)
		m.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}
