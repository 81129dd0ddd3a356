// Package observability holds the application's Prometheus metric vectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fittrack_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LedgerWrites counts accepted ledger mutations by ledger and operation.
	LedgerWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fittrack_ledger_writes_total",
		Help: "Total number of accepted ledger writes by ledger and operation",
	}, []string{"ledger", "operation"})

	// SessionsIssued counts session tokens issued by flow (signup/login).
	SessionsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fittrack_sessions_issued_total",
		Help: "Total number of session tokens issued by flow",
	}, []string{"flow"})
)
