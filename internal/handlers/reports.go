package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"healthform-server/internal/aggregation"
	"healthform-server/internal/extraction"
	"healthform-server/internal/middleware"
	"healthform-server/internal/models"
	"healthform-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportHandler handles lab report upload, retrieval and processing.
type ReportHandler struct {
	DB        *gorm.DB
	Pipeline  *extraction.Pipeline
	Engine    *aggregation.Engine
	Recoverer extraction.TextRecoverer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(db *gorm.DB, pipeline *extraction.Pipeline, engine *aggregation.Engine, recoverer extraction.TextRecoverer) *ReportHandler {
	return &ReportHandler{DB: db, Pipeline: pipeline, Engine: engine, Recoverer: recoverer}
}

// reportMetadata is the report view without the file payload.
type reportMetadata struct {
	ID         string     `json:"id"`
	PatientID  string     `json:"patientId"`
	FileName   string     `json:"fileName"`
	FileType   string     `json:"fileType"`
	ReportDate *time.Time `json:"reportDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func metadataOf(report *models.LabReport) reportMetadata {
	return reportMetadata{
		ID:         report.ID,
		PatientID:  report.PatientID,
		FileName:   report.FileName,
		FileType:   report.FileType,
		ReportDate: report.ReportDate,
		CreatedAt:  report.CreatedAt,
	}
}

// UploadReport handles uploading a lab report document for the authenticated
// patient. The file is stored as binary data in the database.
func (h *ReportHandler) UploadReport(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient ID not found in token")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Error retrieving file from form: "+err.Error())
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Error reading file content: "+err.Error())
		return
	}

	report := models.LabReport{
		PatientID: patientID,
		FileName:  header.Filename,
		FileType:  header.Header.Get("Content-Type"),
		FileData:  fileData,
	}

	if err := h.DB.Create(&report).Error; err != nil {
		utils.InternalServerError(c, "Failed to store lab report: "+err.Error())
		return
	}

	utils.Created(c, "Lab report uploaded successfully", metadataOf(&report))
}

// ListReports handles fetching the metadata of a patient's uploaded reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	patientIDStr := c.Param("patientId")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format: "+patientIDStr)
		return
	}

	if !middleware.CanAccessPatient(c, patientIDStr) {
		utils.Forbidden(c, "You are not authorized to view these reports")
		return
	}

	// Skip the blob column; the payload is served by DownloadReport.
	var reports []models.LabReport
	if err := h.DB.Select("id", "created_at", "updated_at", "patient_id", "file_name", "file_type", "report_date").
		Where("patient_id = ?", patientIDStr).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch lab reports: "+err.Error())
		return
	}

	metadata := make([]reportMetadata, len(reports))
	for i := range reports {
		metadata[i] = metadataOf(&reports[i])
	}

	utils.Success(c, "Lab reports fetched successfully", metadata)
}

// DownloadReport handles serving a report's original file content.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	reportIDStr := c.Param("id")
	if _, err := uuid.Parse(reportIDStr); err != nil {
		utils.BadRequest(c, "Invalid Report ID format: "+reportIDStr)
		return
	}

	var report models.LabReport
	if err := h.DB.First(&report, "id = ?", reportIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Lab report not found")
		} else {
			utils.InternalServerError(c, "Database error fetching lab report: "+err.Error())
		}
		return
	}

	if !middleware.CanAccessPatient(c, report.PatientID) {
		utils.Forbidden(c, "You are not authorized to download this report")
		return
	}

	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, report.FileType, report.FileData)
}

// ProcessReportsRequest represents the request body for processing a batch of
// uploaded reports.
type ProcessReportsRequest struct {
	ReportIDs []string `json:"reportIds" binding:"required,min=1"`
}

// ProcessReports runs the extraction pipeline over a batch of the patient's
// reports: per report it recovers the document text, extracts measurements
// and the report date, stamps the report with that date and appends the
// measurements to the patient's history. It then recomputes the
// latest-per-metric snapshot over the full history and upgrades the form's
// completion status. Reports with no recognizable fields contribute nothing
// and the run still succeeds.
func (h *ReportHandler) ProcessReports(c *gin.Context) {
	patientIDStr := c.Param("patientId")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format: "+patientIDStr)
		return
	}

	if !middleware.CanAccessPatient(c, patientIDStr) {
		utils.Forbidden(c, "You are not authorized to process reports for this patient")
		return
	}

	var req ProcessReportsRequest
	if !utils.BindAndValidate(c, &req) {
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

	for _, reportID := range req.ReportIDs {
		var report models.LabReport
		if err := h.DB.First(&report, "id = ?", reportID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.NotFound(c, fmt.Sprintf("Lab report with ID '%s' not found", reportID))
			} else {
				utils.InternalServerError(c, "Database error fetching lab report: "+err.Error())
			}
			return
		}
		if report.PatientID != patientIDStr {
			utils.BadRequest(c, fmt.Sprintf("Lab report with ID '%s' does not belong to this patient", reportID))
			return
		}

		// An unreadable document yields an empty extraction, not a failure.
		text, err := h.Recoverer.Recover(&report)
		if err != nil {
			text = ""
		}

		measurements, reportDate := h.Pipeline.Process(text, report.ID)
		report.ReportDate = reportDate
		if err := h.DB.Save(&report).Error; err != nil {
			utils.InternalServerError(c, "Failed to update lab report: "+err.Error())
			return
		}

		for i := range measurements {
			measurements[i].PatientID = patientIDStr
		}
		if len(measurements) > 0 {
			if err := h.DB.Create(&measurements).Error; err != nil {
				utils.InternalServerError(c, "Failed to store measurements: "+err.Error())
				return
			}
		}
	}

	history, err := measurementHistory(h.DB, patientIDStr)
	if err != nil {
		utils.InternalServerError(c, "Failed to load measurement history: "+err.Error())
		return
	}
	snapshot := h.Engine.LatestByMetric(history)

	status := aggregation.StatusAfterExtraction(form.Status, form, snapshot, h.Engine.Tracked())
	if status != form.Status {
		form.Status = status
		if err := h.DB.Save(form).Error; err != nil {
			utils.InternalServerError(c, "Failed to update form status: "+err.Error())
			return
		}
	}

	utils.Success(c, "Lab reports processed successfully", buildFormResponse(&user, form, snapshot))
}
