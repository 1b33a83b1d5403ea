package repository

import (
	"context"
	"hospital/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPatientRepo(t *testing.T) (*gorm.DB, domain.PatientRepo) {
	t.Helper()

	db := newTestDB(t)
	seedCounter(t, db, 0, time.Now())

	return db, NewPatientRepository(db, NewCounterRepository(db))
}

func TestRegisterAndFetchRoundTrip(t *testing.T) {
	_, repo := newPatientRepo(t)

	payload := validPayload()
	patient, err := repo.RegisterPatient(context.Background(), payload, false)
	require.NoError(t, err)
	assert.Equal(t, 1, patient.TokenNumber)

	detail, err := repo.GetPatientByID(context.Background(), patient.PatientID)
	require.NoError(t, err)

	got := detail.Patient
	assert.Equal(t, payload.Name, got.Name)
	assert.Equal(t, payload.FatherName, got.FatherName)
	assert.Equal(t, payload.Email, got.Email)
	assert.Equal(t, payload.CNIC, got.CNIC)
	assert.Equal(t, payload.CatchmentArea, got.CatchmentArea)
	assert.Equal(t, payload.AmountPaid, got.AmountPaid)
	assert.Nil(t, detail.LastVisit, "no visit was requested at registration")
	assert.Empty(t, got.Relations)
}

func TestRegisterWithVisit(t *testing.T) {
	_, repo := newPatientRepo(t)

	patient, err := repo.RegisterPatient(context.Background(), validPayload(), true)
	require.NoError(t, err)

	detail, err := repo.GetPatientByID(context.Background(), patient.PatientID)
	require.NoError(t, err)

	require.NotNil(t, detail.LastVisit)
	assert.WithinDuration(t, patient.CreatedAt, *detail.LastVisit, time.Second)
}

func TestDuplicateCNICRejected(t *testing.T) {
	db, repo := newPatientRepo(t)

	_, err := repo.RegisterPatient(context.Background(), validPayload(), false)
	require.NoError(t, err)

	second := validPayload()
	second.Name = "Someone Else"
	_, err = repo.RegisterPatient(context.Background(), second, false)
	assert.ErrorIs(t, err, domain.ErrDuplicateCNIC)

	var count int64
	require.NoError(t, db.Model(&domain.Patient{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the conflicting registration must not persist anything")
}

func TestRelationBypassesDuplicateCheck(t *testing.T) {
	_, repo := newPatientRepo(t)

	first := validPayload()
	_, err := repo.RegisterPatient(context.Background(), first, false)
	require.NoError(t, err)

	// Same CNIC, but registered through a parent: the uniqueness rule only
	// binds relation-less patients.
	second := validPayload()
	second.Name = "Fatima"
	second.Identity = domain.IdentityKin
	second.Relations = []domain.RelationPayload{
		{Kind: domain.RelationParent, Name: "Ghulam", CNIC: first.CNIC},
	}

	patient, err := repo.RegisterPatient(context.Background(), second, false)
	require.NoError(t, err)
	require.Len(t, patient.Relations, 1)
	assert.Equal(t, first.CNIC, patient.Relations[0].CNIC)
	assert.Equal(t, 2, patient.TokenNumber)
}

func TestSearchPatientByCNIC(t *testing.T) {
	_, repo := newPatientRepo(t)

	own := validPayload()
	own.CNIC = "61101-2223334-5"
	_, err := repo.RegisterPatient(context.Background(), own, false)
	require.NoError(t, err)

	viaRelation := validPayload()
	viaRelation.Name = "Fatima"
	viaRelation.CNIC = "99999-0000000-1"
	viaRelation.Relations = []domain.RelationPayload{
		{Kind: domain.RelationSpouse, Name: "Akbar", CNIC: "61101-9998887-6"},
	}
	_, err = repo.RegisterPatient(context.Background(), viaRelation, false)
	require.NoError(t, err)

	results, err := repo.SearchPatientByCNIC(context.Background(), "2223334")
	require.NoError(t, err)
	require.Len(t, *results, 1)
	assert.Equal(t, "Ali", (*results)[0].Name)

	results, err = repo.SearchPatientByCNIC(context.Background(), "9998887")
	require.NoError(t, err)
	require.Len(t, *results, 1)
	assert.Equal(t, "Fatima", (*results)[0].Name)

	results, err = repo.SearchPatientByCNIC(context.Background(), "61101")
	require.NoError(t, err)
	assert.Len(t, *results, 2)

	results, err = repo.SearchPatientByCNIC(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, *results, 2, "empty term falls back to list-all")
}

func TestUpdatePatient(t *testing.T) {
	_, repo := newPatientRepo(t)

	payload := validPayload()
	payload.Relations = []domain.RelationPayload{
		{Kind: domain.RelationParent, Name: "Ghulam", CNIC: "11111-2222222-3"},
	}
	created, err := repo.RegisterPatient(context.Background(), payload, false)
	require.NoError(t, err)
	require.Len(t, created.Relations, 1)

	update := validPayload()
	update.Name = "Ali Raza"
	update.AmountPaid = 999
	// Correcting the relation CNIC itself: the surrogate ID addresses the
	// row, so a changing CNIC cannot orphan it.
	update.Relations = []domain.RelationPayload{
		{ID: created.Relations[0].ID, Kind: domain.RelationParent, Name: "Ghulam", CNIC: "11111-2222222-9"},
	}

	updated, err := repo.UpdatePatient(context.Background(), created.PatientID, update)
	require.NoError(t, err)

	assert.Equal(t, "Ali Raza", updated.Name)
	assert.Equal(t, created.TokenNumber, updated.TokenNumber, "updates never re-issue a token")
	assert.Equal(t, created.AmountPaid, updated.AmountPaid, "updates never touch amount paid")
	require.Len(t, updated.Relations, 1)
	assert.Equal(t, created.Relations[0].ID, updated.Relations[0].ID)
	assert.Equal(t, "11111-2222222-9", updated.Relations[0].CNIC)
}

func TestUpdatePatientDropsOmittedRelations(t *testing.T) {
	db, repo := newPatientRepo(t)

	payload := validPayload()
	payload.Relations = []domain.RelationPayload{
		{Kind: domain.RelationParent, Name: "Ghulam", CNIC: "11111-2222222-3"},
	}
	created, err := repo.RegisterPatient(context.Background(), payload, false)
	require.NoError(t, err)

	update := validPayload()
	updated, err := repo.UpdatePatient(context.Background(), created.PatientID, update)
	require.NoError(t, err)
	assert.Empty(t, updated.Relations)

	var count int64
	require.NoError(t, db.Model(&domain.Relation{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPatientNotFound(t *testing.T) {
	_, repo := newPatientRepo(t)

	_, err := repo.GetPatientByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)

	_, err = repo.UpdatePatient(context.Background(), 42, validPayload())
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestGetPatientWithDoctor(t *testing.T) {
	db, repo := newPatientRepo(t)

	doctor := domain.User{
		Username: "drkhan",
		Name:     "Dr. Khan",
		Password: "x",
		Role:     domain.RoleDoctor,
	}
	require.NoError(t, db.Create(&doctor).Error)

	payload := validPayload()
	payload.DoctorID = &doctor.UserID
	created, err := repo.RegisterPatient(context.Background(), payload, false)
	require.NoError(t, err)

	detail, err := repo.GetPatientByID(context.Background(), created.PatientID)
	require.NoError(t, err)
	require.NotNil(t, detail.Doctor)
	assert.Equal(t, "Dr. Khan", detail.Doctor.Name)
}
