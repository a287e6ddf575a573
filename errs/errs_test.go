package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifiedErrorsKeepMessage(t *testing.T) {
	notFound := NewNotFoundError("Board not found")
	assert.Equal(t, "Board not found", notFound.Error())
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.True(t, IsNotFound(notFound))

	conflict := NewConflictError("Tag with this name already exists")
	assert.Equal(t, "Tag with this name already exists", conflict.Error())
	assert.True(t, IsConflict(conflict))
	assert.False(t, IsNotFound(conflict))

	badRequest := NewBadRequestError("invalid boardID")
	assert.True(t, IsBadRequest(badRequest))
	assert.Equal(t, http.StatusBadRequest, StatusCode(badRequest))
}

func TestValidationErrors(t *testing.T) {
	missing := NewMissingRequiredFieldError("name")
	assert.True(t, IsMissingRequiredFieldError(missing))
	assert.True(t, IsBadRequest(missing))
	assert.Equal(t, "name", missing.Field)

	assert.Equal(t, "missing required field: name", missing.Error())

	invalid := NewInvalidFieldError("color", "must be at most 20 characters")
	assert.True(t, IsInvalidFieldError(invalid))
	assert.Equal(t, "invalid field: must be at most 20 characters", invalid.Error())
	assert.Equal(t, "color", invalid.Field)

	tooLarge := NewMaxBodySizeExceededError(1024)
	assert.True(t, IsMaxBodySizeExceededError(tooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, tooLarge.StatusCode)
	assert.Equal(t, "body_size", tooLarge.Field)

	malformed := NewMalformedPayloadError("board", errors.New("unexpected EOF"))
	assert.True(t, IsMalformedPayloadError(malformed))
	assert.Contains(t, malformed.GetFullError(), "unexpected EOF")
}

func TestNewDatabaseError(t *testing.T) {
	t.Run("PassesApiErrThrough", func(t *testing.T) {
		original := NewNotFoundError("Idea not found")
		assert.Same(t, original, NewDatabaseError("find", "idea", original))
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		err := NewDatabaseError("find", "board", gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.True(t, IsNotFound(err))
	})

	t.Run("DuplicatedKey", func(t *testing.T) {
		err := NewDatabaseError("create", "tag", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))
		assert.Equal(t, http.StatusConflict, err.StatusCode)
		assert.True(t, IsConflict(err))
	})

	t.Run("UntranslatedUniqueViolation", func(t *testing.T) {
		err := NewDatabaseError("create", "tag", errors.New("UNIQUE constraint failed: tags.name"))
		assert.Equal(t, http.StatusConflict, err.StatusCode)
	})

	t.Run("ForeignKey", func(t *testing.T) {
		err := NewDatabaseError("create", "idea", gorm.ErrForeignKeyViolated)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
		assert.True(t, errors.Is(err, ErrForeignKeyConstraint))
	})

	t.Run("Other", func(t *testing.T) {
		cause := errors.New("syntax error")
		err := NewDatabaseError("find", "ideas", cause)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "database query failed: Failed to find ideas", err.Error())
		assert.Equal(t, "database query failed: Failed to find ideas -> syntax error", err.GetFullError())
	})
}

func TestAIErrors(t *testing.T) {
	unavailable := NewAIUnavailableError()
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.StatusCode)
	assert.True(t, IsAIUnavailable(unavailable))

	upstream := NewAIUpstreamError(errors.New("context deadline exceeded"))
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Equal(t, "AI service error: context deadline exceeded", upstream.Error())
	assert.Equal(t, upstream.Error(), upstream.GetFullError())
	assert.Nil(t, upstream.Cause)
	assert.True(t, IsAIUpstream(upstream))
	assert.False(t, IsAIUnavailable(upstream))
}
