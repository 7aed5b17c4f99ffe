package models

// Dependent links a user to another account they may act for. The link is
// created by the requesting user and only becomes active once the dependent
// confirms it.
type Dependent struct {
	BaseModel
	UserID      string `gorm:"size:36;index;not null;uniqueIndex:idx_user_dependent" json:"userId"`
	DependentID string `gorm:"size:36;index;not null;uniqueIndex:idx_user_dependent" json:"dependentId"`
	Confirmed   bool   `gorm:"default:false" json:"confirmed"`

	// Relations
	User          User `gorm:"foreignKey:UserID" json:"-"`
	DependentUser User `gorm:"foreignKey:DependentID" json:"-"`
}
