package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() *RegistrationPayload {
	return &RegistrationPayload{
		Name:          "Ali",
		FatherName:    "Ahmed",
		Email:         "ali@example.com",
		Identity:      IdentitySelf,
		CNIC:          "12345-1111111-1",
		RegCard:       RegCardNone,
		ContactNumber: "03001234567",
		Education:     "Matric",
		Age:           30,
		Occupation:    "Farmer",
		Address:       "House 12, Street 4, Rawalpindi",
		CatchmentArea: CatchmentUrban,
		AmountPaid:    100,
	}
}

func TestValidateRegistrationAcceptsValidPayload(t *testing.T) {
	assert.Nil(t, ValidateRegistration(validRegistration()))
}

func TestValidateRegistrationRequiredFields(t *testing.T) {
	payload := validRegistration()
	payload.Name = ""
	payload.CNIC = ""
	payload.Age = 0

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)

	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "cnic")
	assert.Contains(t, fieldErrors, "age")
	assert.NotContains(t, fieldErrors, "email")
}

func TestValidateRegistrationEnumsAndEmail(t *testing.T) {
	payload := validRegistration()
	payload.Email = "not-an-address"
	payload.Identity = "alien"
	payload.CatchmentArea = "suburb"

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)

	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "identity")
	assert.Contains(t, fieldErrors, "catchment_area")
}

func TestValidateRegistrationLengthBounds(t *testing.T) {
	payload := validRegistration()
	payload.Name = strings.Repeat("a", 151)
	payload.CNIC = strings.Repeat("1", 16)

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)

	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "cnic")
}

func TestValidateRegistrationCardNumberRule(t *testing.T) {
	payload := validRegistration()
	payload.RegCard = RegCardIssued
	payload.RegCardNumber = ""

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)
	assert.Contains(t, fieldErrors, "reg_card_number")

	payload.RegCardNumber = "RC-1009"
	assert.Nil(t, ValidateRegistration(payload))
}

func TestValidateRegistrationRelations(t *testing.T) {
	payload := validRegistration()
	payload.Relations = []RelationPayload{
		{Kind: "cousin", Name: "", CNIC: ""},
	}

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)

	msgs, ok := fieldErrors["relations.0"]
	require.True(t, ok)
	assert.Len(t, msgs, 3)

	payload.Relations = []RelationPayload{
		{Kind: RelationParent, Name: "Ghulam", CNIC: "11111-2222222-3"},
	}
	assert.Nil(t, ValidateRegistration(payload))

	// kind "none" entries mean "no relation" and are ignored.
	payload.Relations = []RelationPayload{{Kind: RelationNone}}
	assert.Nil(t, ValidateRegistration(payload))
}

// Tag-derived and cross-field errors must land under the same key
// convention: the JSON names the form actually submits.
func TestValidateRegistrationKeysAreJSONNames(t *testing.T) {
	payload := validRegistration()
	payload.Name = ""
	payload.RegCard = RegCardIssued
	payload.RegCardNumber = ""
	payload.Relations = []RelationPayload{{Kind: "cousin", Name: "X", CNIC: "1"}}

	fieldErrors := ValidateRegistration(payload)
	require.NotNil(t, fieldErrors)

	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "reg_card_number")
	assert.Contains(t, fieldErrors, "relations.0")
	for key := range fieldErrors {
		assert.Equal(t, strings.ToLower(key), key, "error keys must be JSON field names, got %q", key)
	}
}
