// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "splitledger"

// ─── RPC ────────────────────────────────────────────────────────────────────

// RPCRequests counts finished RPCs by procedure and connect code ("ok" on success).
var RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "rpc",
	Name:      "requests_total",
	Help:      "Total RPCs handled, by procedure and result code.",
}, []string{"procedure", "code"})

// RPCDuration observes handler latency in seconds.
var RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "rpc",
	Name:      "duration_seconds",
	Help:      "RPC handler latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"procedure"})

// ─── Ledger ─────────────────────────────────────────────────────────────────

// Allocations counts Allocate calls by split type and outcome (ok, invalid).
var Allocations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "allocations_total",
	Help:      "Total expense allocations, by split type and outcome.",
}, []string{"split_type", "outcome"})

// BalanceComputations counts group balance recomputations.
var BalanceComputations = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "balance_computations_total",
	Help:      "Total group balance computations.",
})

// BalanceRecords observes how many expenses plus settlements each balance computation folds.
var BalanceRecords = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "balance_records",
	Help:      "Records (expenses + settlements) folded per balance computation.",
	Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
})

// Outcome labels for Allocations.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)
