package validation

import (
	"errors"
	"testing"

	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required"`
	UserID int64   `json:"userId" validate:"required,gt=0"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed canceled"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(&sample{Name: "a", UserID: 1}))

	err := ValidateStruct(&sample{})
	var anaErr *er.AnaError
	require.True(t, errors.As(err, &anaErr))
	require.Equal(t, er.ValidationCode, anaErr.Code)
	require.Contains(t, err.Error(), "name is required")
	require.Contains(t, err.Error(), "userId is required")

	status := "shipped"
	err = ValidateStruct(&sample{Name: "a", UserID: 1, Status: &status})
	require.ErrorContains(t, err, "status must be one of [pending completed canceled]")
}

func TestGetValidatorSingleton(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}
