package aggregation

import (
	"testing"
	"time"

	"healthform-server/internal/extraction"
	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func filledForm() *models.HealthForm {
	return &models.HealthForm{
		Weight:                 strPtr("70"),
		Height:                 strPtr("1.75"),
		BMI:                    strPtr("22.9"),
		BloodType:              strPtr("O+"),
		AbdominalCircumference: strPtr("85"),
		Allergies:              strPtr("none"),
		Diseases:               strPtr("none"),
		Medications:            strPtr("none"),
		FamilyHistory:          strPtr("none"),
		ImportantNotes:         strPtr("none"),
		ImagesReports:          strPtr("none"),
	}
}

func fullSnapshot(tracked []models.Metric) Snapshot {
	reportDate := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	snapshot := make(Snapshot, len(tracked))
	for _, m := range tracked {
		snapshot[m] = models.Measurement{Metric: m, Value: "1.0", ReportDate: &reportDate}
	}
	return snapshot
}

func tracked(t *testing.T) []models.Metric {
	t.Helper()
	engine, err := NewEngine(extraction.DefaultCatalog())
	require.NoError(t, err)
	return engine.Tracked()
}

func TestEvaluateFormNotStarted(t *testing.T) {
	status := EvaluateForm(&models.HealthForm{}, Snapshot{}, tracked(t))
	assert.Equal(t, models.FormNotStarted, status)
}

func TestEvaluateFormInProgressProfileOnly(t *testing.T) {
	form := &models.HealthForm{Weight: strPtr("70")}
	status := EvaluateForm(form, Snapshot{}, tracked(t))
	assert.Equal(t, models.FormInProgress, status)
}

func TestEvaluateFormInProgressMetricsOnly(t *testing.T) {
	metrics := tracked(t)
	snapshot := Snapshot{
		models.MetricHemoglobin: {Metric: models.MetricHemoglobin, Value: "13.5"},
	}
	status := EvaluateForm(&models.HealthForm{}, snapshot, metrics)
	assert.Equal(t, models.FormInProgress, status)
}

func TestEvaluateFormFilledRequiresEverything(t *testing.T) {
	metrics := tracked(t)

	// All profile fields but an incomplete snapshot stays In progress.
	status := EvaluateForm(filledForm(), Snapshot{}, metrics)
	assert.Equal(t, models.FormInProgress, status)

	// Full snapshot but a missing profile field stays In progress.
	form := filledForm()
	form.BloodType = nil
	status = EvaluateForm(form, fullSnapshot(metrics), metrics)
	assert.Equal(t, models.FormInProgress, status)

	status = EvaluateForm(filledForm(), fullSnapshot(metrics), metrics)
	assert.Equal(t, models.FormFilled, status)
}

func TestEvaluateFormBlankFieldCountsAsAbsent(t *testing.T) {
	form := filledForm()
	form.Allergies = strPtr("   ")
	status := EvaluateForm(form, fullSnapshot(tracked(t)), tracked(t))
	assert.Equal(t, models.FormInProgress, status)
}

func TestStatusAfterExtractionUpgrades(t *testing.T) {
	metrics := tracked(t)
	snapshot := Snapshot{
		models.MetricUrea: {Metric: models.MetricUrea, Value: "40"},
	}
	status := StatusAfterExtraction(models.FormNotStarted, &models.HealthForm{}, snapshot, metrics)
	assert.Equal(t, models.FormInProgress, status)
}

func TestStatusAfterExtractionFilledIsSticky(t *testing.T) {
	metrics := tracked(t)

	// Even with an empty form and snapshot, an extraction batch cannot move a
	// filled form back.
	status := StatusAfterExtraction(models.FormFilled, &models.HealthForm{}, Snapshot{}, metrics)
	assert.Equal(t, models.FormFilled, status)
}

func TestProfileEditRecomputesAwayFromFilled(t *testing.T) {
	metrics := tracked(t)

	// A profile edit re-runs the full test, so clearing fields can downgrade.
	form := filledForm()
	form.Weight = nil
	status := EvaluateForm(form, fullSnapshot(metrics), metrics)
	assert.Equal(t, models.FormInProgress, status)

	status = EvaluateForm(&models.HealthForm{}, Snapshot{}, metrics)
	assert.Equal(t, models.FormNotStarted, status)
}
