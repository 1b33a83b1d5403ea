package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	IdentitySelf = "self"
	IdentityKin  = "kin"

	RegCardIssued = "issued"
	RegCardNone   = "none"

	CatchmentUrban = "urban"
	CatchmentRural = "rural"
	CatchmentSlum  = "slum"
)

type Patient struct {
	PatientID     int            `gorm:"primaryKey;autoIncrement" json:"patient_id"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name"`
	FatherName    string         `gorm:"type:varchar(150);not null" json:"father_name"`
	Email         string         `gorm:"type:varchar(150);not null" json:"email"`
	Identity      string         `gorm:"type:identity_enum;not null" json:"identity"`
	CNIC          string         `gorm:"type:varchar(15);not null;index" json:"cnic"`
	RegCard       string         `gorm:"type:reg_card_enum;not null" json:"reg_card"`
	RegCardNumber string         `gorm:"type:varchar(30)" json:"reg_card_number"`
	ContactNumber string         `gorm:"type:varchar(15);not null" json:"contact_number"`
	Education     string         `gorm:"type:varchar(50);not null" json:"education"`
	Age           int            `gorm:"not null" json:"age"`
	YearsMarried  int            `json:"years_married"`
	Occupation    string         `gorm:"type:varchar(100);not null" json:"occupation"`
	Address       string         `gorm:"type:varchar(255);not null" json:"address"`
	CatchmentArea string         `gorm:"type:catchment_enum;not null" json:"catchment_area"`
	AmountPaid    int            `gorm:"not null" json:"amount_paid"`
	TokenNumber   int            `gorm:"not null" json:"token_number"`
	DoctorID      *int           `json:"doctor_id"`
	Relations     []Relation     `gorm:"foreignKey:PatientID" json:"relations"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// RegistrationPayload is the front desk form as submitted, before any
// persistence happens. Relations are validated by ValidateRegistration,
// not by the struct tags.
type RegistrationPayload struct {
	Name          string            `json:"name" valid:"required~Name is required,maxstringlength(150)~Name must be at most 150 characters"`
	FatherName    string            `json:"father_name" valid:"required~Father name is required,maxstringlength(150)~Father name must be at most 150 characters"`
	Email         string            `json:"email" valid:"required~Email is required,email~Invalid email format,maxstringlength(150)~Email must be at most 150 characters"`
	Identity      string            `json:"identity" valid:"required~Identity is required,in(self|kin)~Invalid identity"`
	CNIC          string            `json:"cnic" valid:"required~CNIC is required,maxstringlength(15)~CNIC must be at most 15 characters"`
	RegCard       string            `json:"reg_card" valid:"required~Registration card status is required,in(issued|none)~Invalid registration card status"`
	RegCardNumber string            `json:"reg_card_number" valid:"maxstringlength(30)~Registration card number must be at most 30 characters"`
	ContactNumber string            `json:"contact_number" valid:"required~Contact number is required,maxstringlength(15)~Contact number must be at most 15 characters"`
	Education     string            `json:"education" valid:"required~Education is required,maxstringlength(50)~Education must be at most 50 characters"`
	Age           int               `json:"age" valid:"required~Age is required,range(1|120)~Age must be between 1 and 120"`
	YearsMarried  int               `json:"years_married" valid:"range(0|100)~Years married must be between 0 and 100"`
	Occupation    string            `json:"occupation" valid:"required~Occupation is required,maxstringlength(100)~Occupation must be at most 100 characters"`
	Address       string            `json:"address" valid:"required~Address is required,maxstringlength(255)~Address must be at most 255 characters"`
	CatchmentArea string            `json:"catchment_area" valid:"required~Catchment area is required,in(urban|rural|slum)~Invalid catchment area"`
	AmountPaid    int               `json:"amount_paid" valid:"range(0|1000000)~Amount paid must not be negative"`
	DoctorID      *int              `json:"doctor_id" valid:"-"`
	Relations     []RelationPayload `json:"relations" valid:"-"`
}

// ToPatient maps the form onto a fresh Patient row. Token number is left to
// the registry, which obtains it from the counter.
func (p *RegistrationPayload) ToPatient() Patient {
	patient := Patient{
		Name:          p.Name,
		FatherName:    p.FatherName,
		Email:         p.Email,
		Identity:      p.Identity,
		CNIC:          p.CNIC,
		RegCard:       p.RegCard,
		RegCardNumber: p.RegCardNumber,
		ContactNumber: p.ContactNumber,
		Education:     p.Education,
		Age:           p.Age,
		YearsMarried:  p.YearsMarried,
		Occupation:    p.Occupation,
		Address:       p.Address,
		CatchmentArea: p.CatchmentArea,
		AmountPaid:    p.AmountPaid,
		DoctorID:      p.DoctorID,
	}

	for _, rel := range p.Relations {
		if rel.Kind == RelationNone {
			continue
		}
		patient.Relations = append(patient.Relations, Relation{
			Kind: rel.Kind,
			Name: rel.Name,
			CNIC: rel.CNIC,
		})
	}

	return patient
}

type PatientDetail struct {
	Patient   Patient         `json:"patient"`
	LastVisit *time.Time      `json:"last_visit"`
	Doctor    *SafeDoctorData `json:"doctor,omitempty"`
}

type PatientRepo interface {
	RegisterPatient(ctx context.Context, payload *RegistrationPayload, withVisit bool) (*Patient, error)
	GetPatientByID(ctx context.Context, id int) (*PatientDetail, error)
	UpdatePatient(ctx context.Context, id int, payload *RegistrationPayload) (*Patient, error)
	SearchPatientByCNIC(ctx context.Context, term string) (*[]Patient, error)
}

type PatientUseCase interface {
	RegisterPatientUC(ctx context.Context, payload *RegistrationPayload, withVisit bool) (*Patient, error)
	GetPatientByID(ctx context.Context, id int) (*PatientDetail, error)
	UpdatePatient(ctx context.Context, id int, payload *RegistrationPayload) (*Patient, error)
	SearchPatientByCNIC(ctx context.Context, term string) (*[]Patient, error)
}
