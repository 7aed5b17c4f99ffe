package aggregation

import (
	"strings"

	"healthform-server/internal/models"
)

// EvaluateForm fully reclassifies a form's completion status from current
// data. Filled requires every profile field non-blank and every tracked
// metric present in the snapshot; Not started means nothing at all is
// present; anything in between is In progress. Profile edits use this
// directly, so they can move the status in any direction.
func EvaluateForm(form *models.HealthForm, snapshot Snapshot, tracked []models.Metric) models.FormStatus {
	profile := form.ProfileValues()
	profileSet := 0
	for _, v := range profile {
		if v != nil && strings.TrimSpace(*v) != "" {
			profileSet++
		}
	}

	metricsSet := 0
	for _, m := range tracked {
		if _, ok := snapshot[m]; ok {
			metricsSet++
		}
	}

	switch {
	case profileSet == len(profile) && metricsSet == len(tracked):
		return models.FormFilled
	case profileSet == 0 && metricsSet == 0:
		return models.FormNotStarted
	default:
		return models.FormInProgress
	}
}

// StatusAfterExtraction reclassifies the form after a batch of reports has
// been processed. Filled is sticky here: a new extraction batch never moves
// a filled form back, only an explicit profile edit re-runs the full test.
func StatusAfterExtraction(current models.FormStatus, form *models.HealthForm, snapshot Snapshot, tracked []models.Metric) models.FormStatus {
	if current == models.FormFilled {
		return models.FormFilled
	}
	return EvaluateForm(form, snapshot, tracked)
}
