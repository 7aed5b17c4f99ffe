package models

// FormStatus represents how complete a patient's health form is
type FormStatus string

const (
	FormNotStarted FormStatus = "Not started"
	FormInProgress FormStatus = "In progress"
	FormFilled     FormStatus = "Filled"
)

// HealthForm holds the manually entered profile fields for one patient plus
// the persisted completion status. Latest lab values are not stored here:
// they are recomputed from the measurement history on every read.
type HealthForm struct {
	BaseModel
	PatientID              string     `gorm:"size:36;uniqueIndex;not null" json:"patientId"`
	Weight                 *string    `gorm:"size:255" json:"weight"`
	Height                 *string    `gorm:"size:255" json:"height"`
	BMI                    *string    `gorm:"size:255" json:"bmi"`
	BloodType              *string    `gorm:"size:255" json:"bloodType"`
	AbdominalCircumference *string    `gorm:"size:255" json:"abdominalCircumference"`
	Allergies              *string    `gorm:"size:255" json:"allergies"`
	Diseases               *string    `gorm:"size:255" json:"diseases"`
	Medications            *string    `gorm:"size:255" json:"medications"`
	FamilyHistory          *string    `gorm:"size:255" json:"familyHistory"`
	ImportantNotes         *string    `gorm:"size:255" json:"importantNotes"`
	ImagesReports          *string    `gorm:"size:255" json:"imagesReports"`
	Status                 FormStatus `gorm:"size:20;default:'Not started'" json:"formStatus"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}

// ProfileValues returns every manually entered field in declaration order.
// The completion evaluator treats a nil or blank entry as absent.
func (f *HealthForm) ProfileValues() []*string {
	return []*string{
		f.Weight,
		f.Height,
		f.BMI,
		f.BloodType,
		f.AbdominalCircumference,
		f.Allergies,
		f.Diseases,
		f.Medications,
		f.FamilyHistory,
		f.ImportantNotes,
		f.ImagesReports,
	}
}
