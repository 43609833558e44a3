package validation_test

import (
	"errors"
	"testing"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	t.Run("missing required fields are listed by json name", func(t *testing.T) {
		err := validation.Struct(&domain.CreateMissingPersonInput{FullName: "Jane Doe"})
		require.Error(t, err)

		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Missing())
		assert.Equal(t,
			"Required fields: gender, last_seen_location, last_seen_date, contact_name, contact_phone",
			err.Error())
	})

	t.Run("short password", func(t *testing.T) {
		err := validation.Struct(&domain.CreateUserInput{
			FullName: "Ana",
			Email:    "ana@example.com",
			Password: "12345",
		})
		require.Error(t, err)
		assert.Equal(t, "password must be at least 6 characters", err.Error())
	})

	t.Run("numeric bound has no unit", func(t *testing.T) {
		in := validCase()
		age := 200
		in.Age = &age
		err := validation.Struct(&in)
		require.Error(t, err)
		assert.Equal(t, "age must be at most 150", err.Error())
	})

	t.Run("bad enum value", func(t *testing.T) {
		in := validCase()
		in.Priority = "urgent"
		err := validation.Struct(&in)
		require.Error(t, err)
		assert.Equal(t, "Invalid value for priority", err.Error())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		in := validCase()
		lat := 91.0
		in.LastSeenLatitude = &lat
		err := validation.Struct(&in)
		require.Error(t, err)
		assert.Equal(t, "Coordinates out of range", err.Error())
	})

	t.Run("valid input", func(t *testing.T) {
		in := validCase()
		assert.NoError(t, validation.Struct(&in))
	})
}

func validCase() domain.CreateMissingPersonInput {
	return domain.CreateMissingPersonInput{
		FullName:         "Jane Doe",
		Gender:           domain.GenderFemale,
		LastSeenLocation: "Central Station",
		LastSeenDate:     "2024-03-01",
		ContactName:      "John Doe",
		ContactPhone:     "+15550100",
	}
}
