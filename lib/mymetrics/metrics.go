package mymetrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

var (
	once sync.Once

	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Checkouts by outcome (succeeded/rejected/failed).",
		},
		[]string{"outcome"},
	)

	gatewayCallSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_call_seconds",
			Help:    "Latency of payment gateway calls per step.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"step", "success"},
	)
)

// MustRegister registers the collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(checkoutsTotal, gatewayCallSeconds)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncCheckout(outcome Outcome) {
	checkoutsTotal.WithLabelValues(string(outcome)).Inc()
}

func ObserveGatewayCall(step string, started time.Time, success bool) {
	gatewayCallSeconds.WithLabelValues(step, strconv.FormatBool(success)).Observe(time.Since(started).Seconds())
}
