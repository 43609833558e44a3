package missingperson

import (
	"math"
	"strings"
	"time"

	"missing-person-tracker/internal/domain"
)

// requiredColumns cannot be cleared by a partial update.
var requiredColumns = map[string]bool{
	"full_name":          true,
	"gender":             true,
	"last_seen_location": true,
	"last_seen_date":     true,
	"contact_name":       true,
	"contact_phone":      true,
	"priority":           true,
}

// NormalizeUpdate keeps the recognized keys of a decoded JSON body and
// converts each value to its column type. Unknown keys are ignored; a body
// with no recognized key yields domain.ErrNoFieldsToUpdate.
func NormalizeUpdate(raw map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{})

	for _, field := range domain.UpdatableCaseFields {
		value, present := raw[field]
		if !present {
			continue
		}

		if value == nil {
			if requiredColumns[field] {
				return nil, &domain.FieldError{Field: field, Reason: "cannot be null"}
			}
			out[field] = nil
			continue
		}

		switch field {
		case "age":
			n, ok := value.(float64)
			if !ok || n < 0 || n > 150 || n != math.Trunc(n) {
				return nil, &domain.FieldError{Field: field, Reason: "must be a whole number between 0 and 150"}
			}
			out[field] = int(n)

		case "gender":
			s, ok := value.(string)
			if !ok || !domain.Gender(s).IsValid() {
				return nil, &domain.FieldError{Field: field, Reason: "must be male, female or other"}
			}
			out[field] = s

		case "priority":
			s, ok := value.(string)
			if !ok || !domain.Priority(s).IsValid() {
				return nil, &domain.FieldError{Field: field, Reason: "must be low, medium, high or critical"}
			}
			out[field] = s

		case "last_seen_date":
			s, ok := value.(string)
			if !ok {
				return nil, &domain.FieldError{Field: field, Reason: "expected YYYY-MM-DD"}
			}
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, &domain.FieldError{Field: field, Reason: "expected YYYY-MM-DD"}
			}
			out[field] = d

		default:
			s, ok := value.(string)
			if !ok {
				return nil, &domain.FieldError{Field: field, Reason: "must be a string"}
			}
			if requiredColumns[field] && strings.TrimSpace(s) == "" {
				return nil, &domain.FieldError{Field: field, Reason: "cannot be empty"}
			}
			out[field] = s
		}
	}

	if len(out) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}
	return out, nil
}
