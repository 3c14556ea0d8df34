package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	plansGeneratedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wellness_service",
		Subsystem: "plans",
		Name:      "generated_total",
		Help:      "Number of custom exercise plans generated.",
	})

	planRuleCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellness_service",
		Subsystem: "plans",
		Name:      "rule_fired_total",
		Help:      "Number of generated plans each selection rule contributed to.",
	}, []string{"rule"})

	planSizeHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wellness_service",
		Subsystem: "plans",
		Name:      "exercises_per_plan",
		Help:      "Number of exercises in each generated plan.",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})

	catalogMissCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellness_service",
		Subsystem: "catalog",
		Name:      "lookup_misses_total",
		Help:      "Number of catalog lookups for unknown names, labeled by collection.",
	}, []string{"collection"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wellness_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by method and status code.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"method", "code"})
)

func init() {
	prometheus.MustRegister(plansGeneratedCounter, planRuleCounter, planSizeHistogram, catalogMissCounter, httpDuration)
}

// RecordPlanGenerated counts a plan and the rules that shaped it.
func RecordPlanGenerated(rules []string, size int) {
	plansGeneratedCounter.Inc()
	for _, rule := range rules {
		planRuleCounter.WithLabelValues(rule).Inc()
	}
	planSizeHistogram.Observe(float64(size))
}

// RecordCatalogMiss counts a lookup for a name the catalog does not hold.
func RecordCatalogMiss(collection string) {
	catalogMissCounter.WithLabelValues(collection).Inc()
}

// RecordHTTPRequest observes a served request.
func RecordHTTPRequest(method string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
