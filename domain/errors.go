package domain

import "errors"

var (
	// ErrDuplicateCNIC is returned when a relation-less registration carries
	// a CNIC already held by another relation-less patient.
	ErrDuplicateCNIC = errors.New("a patient with this CNIC is already registered")

	// ErrPatientNotFound is returned by fetch, update and add-visit when the
	// referenced patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrCounterNotSeeded means the global_settings row is missing. That is a
	// deployment fault and must stop the registration path, not fall through.
	ErrCounterNotSeeded = errors.New("token counter row is missing, run migrations first")
)
