package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Validation("x").HTTPStatus())
	assert.Equal(t, http.StatusConflict, Conflict("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal("x").HTTPStatus())
}

func TestIs_MatchesByCode(t *testing.T) {
	err := NotFound("Oda bulunamadı")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))

	// Wrapped errors still match their sentinel.
	wrapped := fmt.Errorf("lookup: %w", err)
	assert.True(t, Is(wrapped, ErrNotFound))
}

func TestWithCause_PreservesCodeAndUnwraps(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NotFound("profile not found").WithCause(cause)

	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, cause, Unwrap(err))
	assert.Contains(t, err.Error(), "boom")
}
