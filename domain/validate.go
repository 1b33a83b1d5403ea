package domain

import (
	"fmt"

	"github.com/asaskevich/govalidator"
)

// WholeObjectKey indexes errors that do not belong to a single field.
const WholeObjectKey = "_errors"

var relationKinds = []string{RelationParent, RelationSibling, RelationChild, RelationSpouse}

// ValidateRegistration checks a registration form structurally and returns a
// field → messages map, or nil when the payload is acceptable. Keys are the
// JSON names of the form fields, which is what govalidator emits for tagged
// structs; the cross-field rules below follow the same convention. It never
// touches the database; duplicate checks happen in the registry.
func ValidateRegistration(payload *RegistrationPayload) map[string][]string {
	fieldErrors := map[string][]string{}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		for field, msg := range govalidator.ErrorsByField(err) {
			fieldErrors[field] = append(fieldErrors[field], msg)
		}
	}

	if payload.RegCard == RegCardIssued && payload.RegCardNumber == "" {
		fieldErrors["reg_card_number"] = append(fieldErrors["reg_card_number"], "Registration card number is required when a card is issued")
	}

	for i, rel := range payload.Relations {
		if rel.Kind == RelationNone {
			continue
		}
		key := fmt.Sprintf("relations.%d", i)
		if !govalidator.IsIn(rel.Kind, relationKinds...) {
			fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid relation kind %q", rel.Kind))
		}
		if rel.Name == "" {
			fieldErrors[key] = append(fieldErrors[key], "Relation name is required")
		} else if len(rel.Name) > 150 {
			fieldErrors[key] = append(fieldErrors[key], "Relation name must be at most 150 characters")
		}
		if rel.CNIC == "" {
			fieldErrors[key] = append(fieldErrors[key], "Relation CNIC is required")
		} else if len(rel.CNIC) > 15 {
			fieldErrors[key] = append(fieldErrors[key], "Relation CNIC must be at most 15 characters")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
