package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planebound/planebound-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "boss not found")
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "boss not found", err.Message)
	assert.Equal(t, "NOT_FOUND: boss not found", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("boss not found")
	wrapped := errors.Wrap(inner, "failed to start encounter")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to reach redis")
	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
}

func TestGetCodeNilIsOK(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.Code
	}{
		{"not found", errors.NotFoundf("boss %q", "x"), errors.CodeNotFound},
		{"invalid argument", errors.InvalidArgument("bad input"), errors.CodeInvalidArgument},
		{"already exists", errors.AlreadyExists("duplicate"), errors.CodeAlreadyExists},
		{"failed precondition", errors.FailedPrecondition("no boss"), errors.CodeFailedPrecondition},
		{"internal", errors.Internal("boom"), errors.CodeInternal},
		{"unavailable", errors.Unavailable("down"), errors.CodeUnavailable},
		{"resource exhausted", errors.ResourceExhausted("rate limited"), errors.CodeResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errors.GetCode(tt.err))
		})
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeResourceExhausted, http.StatusTooManyRequests},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.code.HTTPStatus())
	}
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)

	vb := errors.NewValidationBuilder()
	vb.RequiredField("name")
	errors.ValidateRange("playerCount", 9, 1, 4, vb)
	err = vb.Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "validation failed")
}

func TestMetaAttachment(t *testing.T) {
	err := errors.Internal("boom").WithMeta("attempt", 3)
	assert.Equal(t, 3, err.Meta["attempt"])
}
