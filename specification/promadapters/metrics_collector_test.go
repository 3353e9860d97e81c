package promadapters_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-specifications-go/specification/promadapters"
)

func Test_MetricsCollector_RecordsAllVectorKinds(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry, "solid")
	labels := map[string]string{"operation": "query", "status": "success"}

	// act
	collector.RecordDuration("catalog_query_duration_seconds", 20*time.Millisecond, labels)
	collector.IncrementCounter("catalog_queries_total", labels)
	collector.IncrementCounter("catalog_queries_total", labels)
	collector.RecordValue("catalog_products_returned", 4, labels)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, family := range families {
		require.Len(t, family.GetMetric(), 1)
		m := family.GetMetric()[0]
		assert.Len(t, m.GetLabel(), 2)

		switch {
		case m.GetHistogram() != nil:
			values[family.GetName()] = float64(m.GetHistogram().GetSampleCount())
		case m.GetCounter() != nil:
			values[family.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[family.GetName()] = m.GetGauge().GetValue()
		}
	}

	assert.Equal(t, 1.0, values["solid_catalog_query_duration_seconds"])
	assert.Equal(t, 2.0, values["solid_catalog_queries_total"])
	assert.Equal(t, 4.0, values["solid_catalog_products_returned"])
}

func Test_MetricsCollector_DropsInconsistentLabelSets(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry, "solid")

	collector.IncrementCounter("saves_total", map[string]string{"status": "success"})

	assert.NotPanics(t, func() {
		collector.IncrementCounter("saves_total", map[string]string{"other": "label"})
	})

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, 1.0, families[0].GetMetric()[0].GetCounter().GetValue())
}
