package handlers

import (
	"strings"
	"time"

	"healthform-server/internal/aggregation"
	"healthform-server/internal/middleware"
	"healthform-server/internal/models"
	"healthform-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormHandler handles health form related requests.
type FormHandler struct {
	DB     *gorm.DB
	Engine *aggregation.Engine
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(db *gorm.DB, engine *aggregation.Engine) *FormHandler {
	return &FormHandler{DB: db, Engine: engine}
}

// measurementHistory loads a patient's complete measurement history in
// insertion order, which is the order the aggregation engine expects for its
// tie-break among undated measurements.
func measurementHistory(db *gorm.DB, patientID string) ([]models.Measurement, error) {
	var history []models.Measurement
	err := db.Where("patient_id = ?", patientID).
		Order("created_at asc, id asc").
		Find(&history).Error
	return history, err
}

// getOrCreateForm fetches the patient's form, creating an empty one when the
// patient has none yet.
func getOrCreateForm(db *gorm.DB, patientID string) (*models.HealthForm, error) {
	var form models.HealthForm
	err := db.Where("patient_id = ?", patientID).First(&form).Error
	if err == gorm.ErrRecordNotFound {
		form = models.HealthForm{PatientID: patientID, Status: models.FormNotStarted}
		if err := db.Create(&form).Error; err != nil {
			return nil, err
		}
		return &form, nil
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// LatestValue is the per-metric entry of the form view.
type LatestValue struct {
	Value      string     `json:"value"`
	Unit       string     `json:"unit"`
	ReportDate *time.Time `json:"reportDate,omitempty"`
}

// FormResponse is the form-and-latest-values payload served to clients.
type FormResponse struct {
	Name                   string                        `json:"name"`
	Age                    *int                          `json:"age,omitempty"`
	Weight                 *string                       `json:"weight"`
	Height                 *string                       `json:"height"`
	BMI                    *string                       `json:"bmi"`
	BloodType              *string                       `json:"bloodType"`
	AbdominalCircumference *string                       `json:"abdominalCircumference"`
	Allergies              *string                       `json:"allergies"`
	Diseases               *string                       `json:"diseases"`
	Medications            *string                       `json:"medications"`
	FamilyHistory          *string                       `json:"familyHistory"`
	ImportantNotes         *string                       `json:"importantNotes"`
	ImagesReports          *string                       `json:"imagesReports"`
	FormStatus             models.FormStatus             `json:"formStatus"`
	LatestValues           map[models.Metric]LatestValue `json:"latestValues"`
}

// buildFormResponse assembles the response from the stored form and a freshly
// recomputed snapshot. Metrics without any measurement are absent from
// LatestValues rather than present with an empty entry.
func buildFormResponse(user *models.User, form *models.HealthForm, snapshot aggregation.Snapshot) FormResponse {
	latest := make(map[models.Metric]LatestValue, len(snapshot))
	for metric, m := range snapshot {
		latest[metric] = LatestValue{Value: m.Value, Unit: m.Unit, ReportDate: m.ReportDate}
	}
	return FormResponse{
		Name:                   user.FullName(),
		Age:                    user.Age(),
		Weight:                 form.Weight,
		Height:                 form.Height,
		BMI:                    form.BMI,
		BloodType:              form.BloodType,
		AbdominalCircumference: form.AbdominalCircumference,
		Allergies:              form.Allergies,
		Diseases:               form.Diseases,
		Medications:            form.Medications,
		FamilyHistory:          form.FamilyHistory,
		ImportantNotes:         form.ImportantNotes,
		ImagesReports:          form.ImagesReports,
		FormStatus:             form.Status,
		LatestValues:           latest,
	}
}

// UpdateFormRequest represents a partial update of the profile fields. A nil
// field is left untouched; a blank string clears the field.
type UpdateFormRequest struct {
	Weight                 *string `json:"weight"`
	Height                 *string `json:"height"`
	BMI                    *string `json:"bmi"`
	BloodType              *string `json:"bloodType"`
	AbdominalCircumference *string `json:"abdominalCircumference"`
	Allergies              *string `json:"allergies"`
	Diseases               *string `json:"diseases"`
	Medications            *string `json:"medications"`
	FamilyHistory          *string `json:"familyHistory"`
	ImportantNotes         *string `json:"importantNotes"`
	ImagesReports          *string `json:"imagesReports"`
}

func (r *UpdateFormRequest) isEmpty() bool {
	fields := []*string{
		r.Weight, r.Height, r.BMI, r.BloodType, r.AbdominalCircumference,
		r.Allergies, r.Diseases, r.Medications, r.FamilyHistory,
		r.ImportantNotes, r.ImagesReports,
	}
	for _, f := range fields {
		if f != nil {
			return false
		}
	}
	return true
}

// UpdateForm handles updating a patient's manually entered profile fields.
// A profile edit always fully recomputes the completion status, so it can
// move the form in any direction, including away from Filled.
func (h *FormHandler) UpdateForm(c *gin.Context) {
	patientIDStr := c.Param("patientId")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format: "+patientIDStr)
		return
	}

	if !middleware.CanAccessPatient(c, patientIDStr) {
		utils.Forbidden(c, "You are not authorized to update this form")
		return
	}

	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.isEmpty() {
		utils.BadRequest(c, "Empty form")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", patientIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	form, err := getOrCreateForm(h.DB, patientIDStr)
	if err != nil {
		utils.InternalServerError(c, "Failed to load health form: "+err.Error())
		return
	}

	apply := func(dst **string, src *string) {
		if src == nil {
			return
		}
		if strings.TrimSpace(*src) == "" {
			*dst = nil
			return
		}
		value := *src
		*dst = &value
	}
	apply(&form.Weight, req.Weight)
	apply(&form.Height, req.Height)
	apply(&form.BMI, req.BMI)
	apply(&form.BloodType, req.BloodType)
	apply(&form.AbdominalCircumference, req.AbdominalCircumference)
	apply(&form.Allergies, req.Allergies)
	apply(&form.Diseases, req.Diseases)
	apply(&form.Medications, req.Medications)
	apply(&form.FamilyHistory, req.FamilyHistory)
	apply(&form.ImportantNotes, req.ImportantNotes)
	apply(&form.ImagesReports, req.ImagesReports)

	history, err := measurementHistory(h.DB, patientIDStr)
	if err != nil {
		utils.InternalServerError(c, "Failed to load measurement history: "+err.Error())
		return
	}
	snapshot := h.Engine.LatestByMetric(history)
	form.Status = aggregation.EvaluateForm(form, snapshot, h.Engine.Tracked())

	if err := h.DB.Save(form).Error; err != nil {
		utils.InternalServerError(c, "Failed to update health form: "+err.Error())
		return
	}

	utils.Success(c, "Health form updated successfully", buildFormResponse(&user, form, snapshot))
}

// GetForm handles fetching a patient's form together with the latest known
// value per tracked metric, recomputed from the full measurement history.
func (h *FormHandler) GetForm(c *gin.Context) {
	patientIDStr := c.Param("patientId")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format: "+patientIDStr)
		return
	}

	if !middleware.CanAccessPatient(c, patientIDStr) {
		utils.Forbidden(c, "You are not authorized to view this form")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", patientIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var form models.HealthForm
	if err := h.DB.Where("patient_id = ?", patientIDStr).First(&form).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Success(c, "No form was found for this user", nil)
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	history, err := measurementHistory(h.DB, patientIDStr)
	if err != nil {
		utils.InternalServerError(c, "Failed to load measurement history: "+err.Error())
		return
	}
	snapshot := h.Engine.LatestByMetric(history)

	utils.Success(c, "Health form fetched successfully", buildFormResponse(&user, &form, snapshot))
}
