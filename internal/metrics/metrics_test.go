package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndIncrement(t *testing.T) {
	registry := prometheus.NewRegistry()
	Register(registry)

	recorded := testutil.ToFloat64(auditRecordsTotal)
	failed := testutil.ToFloat64(auditFailuresTotal)

	IncAuditRecorded()
	IncAuditFailed()
	IncAuditFailed()
	ObserveStatusCheck("ok")

	assert.Equal(t, recorded+1, testutil.ToFloat64(auditRecordsTotal))
	assert.Equal(t, failed+2, testutil.ToFloat64(auditFailuresTotal))
	assert.GreaterOrEqual(t, testutil.ToFloat64(storeStatusChecksTotal.WithLabelValues("ok")), 1.0)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "nstc_audit_records_total")
	assert.Contains(t, names, "nstc_store_status_checks_total")
}
