package domain

import "time"

const (
	RelationParent  = "parent"
	RelationSibling = "sibling"
	RelationChild   = "child"
	RelationSpouse  = "spouse"
	RelationNone    = "none"
)

// Relation is the identity document holder a patient is registered through
// when they carry no CNIC of their own.
type Relation struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	Kind      string    `gorm:"type:relation_enum;not null" json:"kind"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	CNIC      string    `gorm:"type:varchar(15);not null;index" json:"cnic"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RelationPayload carries the surrogate ID on updates so a relation row can
// be addressed even while its CNIC is being corrected. A zero ID means a new
// row.
type RelationPayload struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	CNIC string `json:"cnic"`
}
