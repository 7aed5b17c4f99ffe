package extraction

import (
	"regexp"
	"testing"

	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	expected := []models.Metric{
		models.MetricHemoglobin,
		models.MetricHematocrit,
		models.MetricRedBloodCell,
		models.MetricGlycatedHemoglobin,
		models.MetricAST,
		models.MetricALT,
		models.MetricUrea,
		models.MetricCreatinine,
	}
	assert.Equal(t, expected, DefaultCatalog().Metrics())

	// Order must be stable across calls.
	assert.Equal(t, DefaultCatalog().Metrics(), DefaultCatalog().Metrics())
}

func TestNewCatalogRejectsDuplicateMetric(t *testing.T) {
	rules := []MatchRule{
		{Metric: models.MetricUrea, Pattern: regexp.MustCompile(`UREIA\s*([\d,.]+)`), Unit: "mg/dL"},
		{Metric: models.MetricUrea, Pattern: regexp.MustCompile(`URÉIA\s*([\d,.]+)`), Unit: "mg/dL"},
	}
	_, err := NewCatalog(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate match rule")
}

func TestCatalogTracks(t *testing.T) {
	catalog := DefaultCatalog()
	assert.True(t, catalog.Tracks(models.MetricHemoglobin))
	assert.False(t, catalog.Tracks(models.Metric("cholesterol")))
}
