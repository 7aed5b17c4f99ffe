package handlers

import (
	"testing"
	"time"

	"healthform-server/internal/aggregation"
	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateFormRequestIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateFormRequest{}).isEmpty())
	assert.False(t, (&UpdateFormRequest{Weight: strPtr("70")}).isEmpty())
	// A blank string is still an explicit instruction to clear the field.
	assert.False(t, (&UpdateFormRequest{Allergies: strPtr("")}).isEmpty())
}

func TestBuildFormResponse(t *testing.T) {
	dob := time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC)
	user := models.User{FirstName: "Ana", LastName: "Costa", DateOfBirth: &dob}
	form := models.HealthForm{
		Weight: strPtr("70"),
		Status: models.FormInProgress,
	}
	reportDate := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	snapshot := aggregation.Snapshot{
		models.MetricHemoglobin: {
			Metric:     models.MetricHemoglobin,
			Value:      "13.5",
			Unit:       "g/dL",
			ReportDate: &reportDate,
		},
	}

	resp := buildFormResponse(&user, &form, snapshot)

	assert.Equal(t, "Ana Costa", resp.Name)
	require.NotNil(t, resp.Age)
	assert.Equal(t, strPtr("70"), resp.Weight)
	assert.Nil(t, resp.Height)
	assert.Equal(t, models.FormInProgress, resp.FormStatus)

	require.Contains(t, resp.LatestValues, models.MetricHemoglobin)
	hb := resp.LatestValues[models.MetricHemoglobin]
	assert.Equal(t, "13.5", hb.Value)
	assert.Equal(t, "g/dL", hb.Unit)
	require.NotNil(t, hb.ReportDate)
	assert.True(t, hb.ReportDate.Equal(reportDate))

	// Metrics without measurements stay out of the map entirely.
	assert.Len(t, resp.LatestValues, 1)
}
