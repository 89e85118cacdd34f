package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", Clone(ErrValidation, "subject too long"))

	appErr := FromError(wrapped)

	assert.Equal(t, ErrValidation.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "subject too long", appErr.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	appErr := FromError(sql.ErrConnDone)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.True(t, errors.Is(appErr, sql.ErrConnDone))
	assert.Nil(t, FromError(nil))
}

func TestClonedErrorMatchesSentinel(t *testing.T) {
	err := Wrap(sql.ErrNoRows, ErrCacheMiss.Code, ErrCacheMiss.Status, "no cached tutors")

	assert.True(t, errors.Is(err, ErrCacheMiss))
	assert.False(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, "no cached tutors: sql: no rows in result set", err.Error())
}
