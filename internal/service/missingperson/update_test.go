package missingperson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missing-person-tracker/internal/domain"
)

func TestNormalizeUpdate(t *testing.T) {
	out, err := NormalizeUpdate(map[string]interface{}{
		"age":            float64(12),
		"gender":         "male",
		"priority":       "high",
		"last_seen_date": "2025-01-02",
		"height":         nil,
		"unknown":        "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, out["age"])
	assert.Equal(t, "male", out["gender"])
	assert.Equal(t, "high", out["priority"])
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), out["last_seen_date"])
	assert.Nil(t, out["height"])
	assert.Contains(t, out, "height")
	assert.NotContains(t, out, "unknown")
}

func TestNormalizeUpdate_Rejects(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"fractional age":    {"age": 3.5},
		"negative age":      {"age": float64(-1)},
		"string age":        {"age": "ten"},
		"bad gender":        {"gender": "unknown"},
		"bad priority":      {"priority": "urgent"},
		"bad date":          {"last_seen_date": "02/01/2025"},
		"null required":     {"full_name": nil},
		"empty required":    {"contact_phone": "  "},
		"non-string column": {"height": 170},
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeUpdate(body)
			var fe *domain.FieldError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestNormalizeUpdate_NothingRecognized(t *testing.T) {
	_, err := NormalizeUpdate(map[string]interface{}{"status": "found", "case_number": "x"})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = NormalizeUpdate(nil)
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}
