package response_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
)

func TestOKWithData(t *testing.T) {
	resp := response.OKWithData(map[string]any{"key": "value"})

	assert.Equal(t, response.StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"key": "value"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := response.Error("something went wrong")

	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type testRequest struct {
		Email    string  `validate:"required,email"`
		Password string  `validate:"required,min=6"`
		Name     string  `validate:"max=5"`
		Price    float64 `validate:"gt=0"`
	}

	validate := validator.New()

	tests := []struct {
		name    string
		input   testRequest
		wantMsg string
	}{
		{
			name:    "required field",
			input:   testRequest{Password: "password123", Price: 1},
			wantMsg: "field Email is a required field",
		},
		{
			name:    "invalid email",
			input:   testRequest{Email: "not-an-email", Password: "password123", Price: 1},
			wantMsg: "field Email must be a valid email",
		},
		{
			name:    "too short",
			input:   testRequest{Email: "a@b.com", Password: "123", Price: 1},
			wantMsg: "field Password is too short",
		},
		{
			name:    "too long",
			input:   testRequest{Email: "a@b.com", Password: "password123", Name: "toolongname", Price: 1},
			wantMsg: "field Name is too long",
		},
		{
			name:    "not greater than",
			input:   testRequest{Email: "a@b.com", Password: "password123"},
			wantMsg: "field Price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			require.Error(t, err)

			resp := response.ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}
