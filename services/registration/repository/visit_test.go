package repository

import (
	"context"
	"hospital/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVisitNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitRepository(db)

	_, err := repo.AddVisit(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Visit{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAddVisitAndList(t *testing.T) {
	db := newTestDB(t)
	seedCounter(t, db, 0, time.Now())

	patients := NewPatientRepository(db, NewCounterRepository(db))
	visits := NewVisitRepository(db)

	first, err := patients.RegisterPatient(context.Background(), validPayload(), false)
	require.NoError(t, err)

	secondPayload := validPayload()
	secondPayload.Name = "Fatima"
	secondPayload.CNIC = "54321-7654321-2"
	second, err := patients.RegisterPatient(context.Background(), secondPayload, false)
	require.NoError(t, err)

	v1, err := visits.AddVisit(context.Background(), first.PatientID)
	require.NoError(t, err)
	assert.Equal(t, first.TokenNumber, v1.TokenNumber)

	v2, err := visits.AddVisit(context.Background(), second.PatientID)
	require.NoError(t, err)
	assert.Equal(t, second.TokenNumber, v2.TokenNumber)

	records, err := visits.ListVisits(context.Background())
	require.NoError(t, err)
	require.Len(t, *records, 2)

	// Most recent visit first.
	assert.Equal(t, v2.VisitID, (*records)[0].VisitID)
	assert.Equal(t, "Fatima", (*records)[0].PatientName)
	assert.Nil(t, (*records)[0].DoctorName)
	assert.Equal(t, v1.VisitID, (*records)[1].VisitID)
	assert.Equal(t, "Ali", (*records)[1].PatientName)
}
