// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IdeaGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_idea_generations_total",
			Help: "Total number of idea generation requests by outcome",
		},
		[]string{"status"},
	)

	IdeaGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "beacon_idea_generation_duration_seconds",
			Help: "Duration of idea generation requests in seconds",
		},
	)

	GatewayResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_gateway_responses_total",
			Help: "Upstream gateway responses by status code",
		},
		[]string{"code"},
	)

	PipelineMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_pipeline_mutations_total",
			Help: "Pipeline store mutations by operation",
		},
		[]string{"op"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_http_requests_total",
			Help: "API requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)
)
