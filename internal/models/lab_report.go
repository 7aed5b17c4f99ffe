package models

import (
	"time"
)

// LabReport represents an uploaded laboratory report document. The file
// content is stored as binary data in the database; ReportDate is filled in
// by the extraction pipeline once the document text has been processed and
// stays nil for documents with no recognizable attendance date.
type LabReport struct {
	BaseModel
	PatientID  string     `gorm:"size:36;index;not null" json:"patientId"`
	FileName   string     `gorm:"size:255;not null" json:"fileName"`
	FileType   string     `gorm:"size:100;not null" json:"fileType"`          // MIME type of the file
	FileData   []byte     `gorm:"type:longblob;not null" json:"-"`            // File content as binary data (longblob for MySQL)
	ReportDate *time.Time `json:"reportDate,omitempty"`

	// Relations
	Patient      User          `gorm:"foreignKey:PatientID" json:"-"`
	Measurements []Measurement `gorm:"foreignKey:ReportID" json:"measurements,omitempty"`
}
