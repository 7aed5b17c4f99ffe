package extraction

import (
	"testing"
	"time"

	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datedReportText = "Atendimento : 01/01/2023\n" + fullReportText

func TestPipelineProcessFullReport(t *testing.T) {
	pipeline := NewPipeline(DefaultCatalog())

	measurements, reportDate := pipeline.Process(datedReportText, "report-1")

	require.NotNil(t, reportDate)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), *reportDate)

	require.Len(t, measurements, 8)
	assert.Equal(t, DefaultCatalog().Metrics(), metricsOf(measurements))
	for _, m := range measurements {
		assert.Equal(t, "report-1", m.ReportID)
		require.NotNil(t, m.ReportDate)
		assert.Equal(t, *reportDate, *m.ReportDate, "all measurements share the document's report date")
	}
}

func TestPipelineProcessWithoutDate(t *testing.T) {
	pipeline := NewPipeline(DefaultCatalog())

	measurements, reportDate := pipeline.Process("HEMOGLOBINA 13,5 g/dL", "report-2")

	assert.Nil(t, reportDate)
	require.Len(t, measurements, 1)
	assert.Nil(t, measurements[0].ReportDate, "measurements from an undated document carry no report date")
	assert.Equal(t, "13.5", measurements[0].Value)
}

func TestPipelineProcessEmptyText(t *testing.T) {
	pipeline := NewPipeline(DefaultCatalog())

	measurements, reportDate := pipeline.Process("", "report-3")

	assert.Nil(t, reportDate)
	assert.Empty(t, measurements)
}

func TestPipelineProcessDeterministic(t *testing.T) {
	pipeline := NewPipeline(DefaultCatalog())

	first, _ := pipeline.Process(datedReportText, "report-4")
	second, _ := pipeline.Process(datedReportText, "report-4")
	assert.Equal(t, first, second)
}

func metricsOf(measurements []models.Measurement) []models.Metric {
	metrics := make([]models.Metric, len(measurements))
	for i, m := range measurements {
		metrics[i] = m.Metric
	}
	return metrics
}
