package validator_test

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmayee2524/inventory-tracker/pkg/validator"
)

type testInput struct {
	Name     string `json:"name" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := validator.NewDefaultValidator()

	err := v.Validate(testInput{})
	require.Error(t, err)

	var validationErrs govalidator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"name", "quantity"}, fields)
}

func TestValidateAcceptsZero(t *testing.T) {
	v := validator.NewDefaultValidator()

	quantity := 0
	assert.NoError(t, v.Validate(testInput{Name: "Widget", Quantity: &quantity}))
}

func TestValidateRejectsNegative(t *testing.T) {
	v := validator.NewDefaultValidator()

	quantity := -1
	err := v.Validate(testInput{Name: "Widget", Quantity: &quantity})
	require.Error(t, err)

	var validationErrs govalidator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "quantity", validationErrs[0].Field())
	assert.Equal(t, "must be greater than or equal to 0", validator.ValidationErrorMessage(validationErrs[0]))
}
