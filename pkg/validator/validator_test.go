package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Plan     string `json:"plan" validate:"omitempty,oneof=basic standard premium"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(registerPayload{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	failures, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, failures, 2)
	require.Equal(t, "email", failures[0].Field)
	require.Equal(t, "password", failures[1].Field)
	require.Equal(t, "8", failures[1].Param)
}

func TestValidateStructAcceptsValidPayload(t *testing.T) {
	err := ValidateStruct(registerPayload{
		Email:    "maria.gonzalez@example.com",
		Password: "longenough",
		Plan:     "standard",
	})
	require.NoError(t, err)
}

func TestValidateStructRejectsUnknownPlan(t *testing.T) {
	err := ValidateStruct(registerPayload{
		Email:    "maria.gonzalez@example.com",
		Password: "longenough",
		Plan:     "platinum",
	})
	require.Error(t, err)
}

func TestGraduationYearRule(t *testing.T) {
	type payload struct {
		GraduationYear string `json:"graduation_year" validate:"omitempty,graduation_year"`
	}

	require.NoError(t, ValidateStruct(payload{}))
	require.NoError(t, ValidateStruct(payload{GraduationYear: "2027"}))
	require.NoError(t, ValidateStruct(payload{GraduationYear: "1987"}))

	for _, bad := range []string{"27", "20270", "abcd", "1899"} {
		err := ValidateStruct(payload{GraduationYear: bad})
		require.Error(t, err, bad)

		failures, ok := err.(ValidationErrors)
		require.True(t, ok)
		require.Equal(t, "graduation_year", failures[0].Field)
		require.Equal(t, "graduation_year", failures[0].Tag)
	}
}
