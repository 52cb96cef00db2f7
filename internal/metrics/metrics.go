package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	auditRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nstc_audit_records_total",
		Help: "Total number of audit records written",
	})
	auditFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nstc_audit_failures_total",
		Help: "Total number of audit records that could not be written",
	})
	storeStatusChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nstc_store_status_checks_total",
		Help: "Store status probes by outcome (ok, partial_failure)",
	}, []string{"result"})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry prometheus.Registerer) {
	registry.MustRegister(auditRecordsTotal, auditFailuresTotal, storeStatusChecksTotal)
}

// IncAuditRecorded increments the written audit records counter.
func IncAuditRecorded() { auditRecordsTotal.Inc() }

// IncAuditFailed increments the failed audit writes counter.
func IncAuditFailed() { auditFailuresTotal.Inc() }

// ObserveStatusCheck counts one store status probe with its overall result.
func ObserveStatusCheck(result string) { storeStatusChecksTotal.WithLabelValues(result).Inc() }
