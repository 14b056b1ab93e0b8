// Package metrics exposes the prometheus collectors used by the tag services
// and the HTTP layer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "msgtags"

// Result labels for TagMutations.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultError     = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	TagMutations    *prometheus.CounterVec
	GroupedQueries  *prometheus.CounterVec
	GroupsReturned  prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// New registers every collector on a private registry so tests can build
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		TagMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tag_mutations_total",
			Help:      "Tag add/remove requests by action and result.",
		}, []string{"action", "result"}),
		GroupedQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grouped_tag_queries_total",
			Help:      "Grouped-by-tags queries by result.",
		}, []string{"result"}),
		GroupsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grouped_tag_query_groups",
			Help:      "Number of groups returned per grouped-by-tags query.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	reg.MustRegister(
		m.TagMutations,
		m.GroupedQueries,
		m.GroupsReturned,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
