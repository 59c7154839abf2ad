package service

import "time"

// Metrics receives upstream call and courier-mapping observations.
type Metrics interface {
	ObserveUpstreamCall(upstream string, outcome string, duration time.Duration)
	IncCourierMapping(stage string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveUpstreamCall(string, string, time.Duration) {}
func (noopMetrics) IncCourierMapping(string) {}

func metricsOrNoop(metrics Metrics) Metrics {
	if metrics == nil {
		return noopMetrics{}
	}
	return metrics
}
