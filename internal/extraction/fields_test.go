package extraction

import (
	"testing"

	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReportText = `
HEMOGLOBINA 13.5 g/dL
HEMATÓCRITO 40.5 %
HEMÁCIAS 4.7 milhões/mm3
HEMOGLOBINA GLICADA - HbA1c RESULTADO: 5.6 %
TRANSAMINASE OXALACÉTICA TGO (AST) RESULTADO: 30 U/L
TRANSAMINASE PIRÚVICA TGP (ALT) RESULTADO: 25 U/L
UREIA RESULTADO: 40 mg/dL
CREATININA RESULTADO: 1.1 mg/dL
`

func TestExtractValuesFullReport(t *testing.T) {
	results := ExtractValues(DefaultCatalog(), fullReportText)
	require.Len(t, results, 8)

	expected := []struct {
		metric models.Metric
		value  string
		unit   string
	}{
		{models.MetricHemoglobin, "13.5", "g/dL"},
		{models.MetricHematocrit, "40.5", "%"},
		{models.MetricRedBloodCell, "4.7", "milhões/mm3"},
		{models.MetricGlycatedHemoglobin, "5.6", "%"},
		{models.MetricAST, "30", "U/L"},
		{models.MetricALT, "25", "U/L"},
		{models.MetricUrea, "40", "mg/dL"},
		{models.MetricCreatinine, "1.1", "mg/dL"},
	}
	for i, e := range expected {
		assert.Equal(t, e.metric, results[i].Metric)
		assert.Equal(t, e.value, results[i].Value)
		assert.Equal(t, e.unit, results[i].Unit)
	}
}

func TestExtractValuesCatalogOrderIndependentOfTextOrder(t *testing.T) {
	// Creatinine before hemoglobin in the document; output order stays
	// catalog order.
	text := "CREATININA RESULTADO: 1.1 mg/dL\nHEMOGLOBINA 13.5 g/dL"
	results := ExtractValues(DefaultCatalog(), text)
	require.Len(t, results, 2)
	assert.Equal(t, models.MetricHemoglobin, results[0].Metric)
	assert.Equal(t, models.MetricCreatinine, results[1].Metric)
}

func TestExtractValuesNormalizesDecimalComma(t *testing.T) {
	results := ExtractValues(DefaultCatalog(), "HEMOGLOBINA 13,5 g/dL")
	require.Len(t, results, 1)
	assert.Equal(t, "13.5", results[0].Value)

	// Already-normalized input is left alone.
	results = ExtractValues(DefaultCatalog(), "HEMOGLOBINA 13.5 g/dL")
	require.Len(t, results, 1)
	assert.Equal(t, "13.5", results[0].Value)
}

func TestExtractValuesOmitsAbsentMetrics(t *testing.T) {
	results := ExtractValues(DefaultCatalog(), "UREIA RESULTADO: 40 mg/dL")
	require.Len(t, results, 1)
	assert.Equal(t, models.MetricUrea, results[0].Metric)
	for _, r := range results {
		assert.NotEqual(t, models.MetricHemoglobin, r.Metric)
	}
}

func TestExtractValuesLabelSpansLineBreak(t *testing.T) {
	text := "HEMOGLOBINA GLICADA - HbA1c\nmétodo HPLC\nRESULTADO: 5,6 %"
	results := ExtractValues(DefaultCatalog(), text)
	require.Len(t, results, 1)
	assert.Equal(t, models.MetricGlycatedHemoglobin, results[0].Metric)
	assert.Equal(t, "5.6", results[0].Value)
}

func TestExtractValuesFirstMatchOnly(t *testing.T) {
	text := "UREIA RESULTADO: 40 mg/dL\nUREIA RESULTADO: 45 mg/dL"
	results := ExtractValues(DefaultCatalog(), text)
	require.Len(t, results, 1)
	assert.Equal(t, "40", results[0].Value)
}

func TestExtractValuesEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractValues(DefaultCatalog(), ""))
	assert.Empty(t, ExtractValues(DefaultCatalog(), "   \n\t  "))
}
