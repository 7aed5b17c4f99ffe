package models

import (
	"time"
)

// Metric identifies one clinical value tracked by the system. The set is
// closed: adding a metric means adding a rule to the extraction catalog.
type Metric string

const (
	MetricHemoglobin         Metric = "hemoglobin"
	MetricHematocrit         Metric = "hematocrit"
	MetricRedBloodCell       Metric = "red_blood_cell"
	MetricGlycatedHemoglobin Metric = "glycated_hemoglobin"
	MetricAST                Metric = "ast"
	MetricALT                Metric = "alt"
	MetricUrea               Metric = "urea"
	MetricCreatinine         Metric = "creatinine"
)

// Measurement is one value extracted from a lab report. Rows are append-only:
// newer reports supersede older values through aggregation, they never
// overwrite them. Value keeps the canonicalized decimal string from the
// report (comma separators already normalized to dots); callers decide the
// numeric representation.
type Measurement struct {
	BaseModel
	PatientID  string     `gorm:"size:36;index;not null" json:"patientId"`
	ReportID   string     `gorm:"size:36;index;not null" json:"reportId"`
	Metric     Metric     `gorm:"size:50;not null" json:"metric"`
	Value      string     `gorm:"size:255;not null" json:"value"`
	Unit       string     `gorm:"size:50" json:"unit"`
	ReportDate *time.Time `json:"reportDate,omitempty"`

	// Relations
	Patient User      `gorm:"foreignKey:PatientID" json:"-"`
	Report  LabReport `gorm:"foreignKey:ReportID" json:"-"`
}
