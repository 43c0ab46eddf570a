package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hms/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "room number is required"}

	assert.Equal(t, "room number is required", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("invalid date"),
			code:    http.StatusBadRequest,
			kind:    failure.KindBadRequest,
			message: "invalid date",
		},
		{
			name:    "not found",
			err:     failure.NotFound("room not found"),
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
			message: "room not found",
		},
		{
			name:    "duplicate key",
			err:     failure.DuplicateKey("room 101 already exists"),
			code:    http.StatusConflict,
			kind:    failure.KindDuplicateKey,
			message: "room 101 already exists",
		},
		{
			name:    "no room available",
			err:     failure.NoRoomAvailable("Single"),
			code:    http.StatusConflict,
			kind:    failure.KindNoRoomAvailable,
			message: "no available room of type Single",
		},
		{
			name:    "invalid quantity or price",
			err:     failure.InvalidQuantityOrPrice("quantity must be positive"),
			code:    http.StatusBadRequest,
			kind:    failure.KindInvalidQuantityOrPrice,
			message: "quantity must be positive",
		},
		{
			name:    "persistence unavailable",
			err:     failure.PersistenceUnavailable(errors.New("dial tcp: refused")),
			code:    http.StatusServiceUnavailable,
			kind:    failure.KindPersistenceUnavailable,
			message: "persistence unavailable: dial tcp: refused",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			kind:    failure.KindUnauthorized,
			message: "token expired",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("Access denied"),
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "Access denied",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("slot already booked"),
			code:    http.StatusConflict,
			kind:    failure.KindConflict,
			message: "slot already booked",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("Export"),
			code:    http.StatusNotImplemented,
			kind:    failure.KindUnimplemented,
			message: "Export",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.Equal(t, "persistence unavailable", failure.PersistenceUnavailable(nil).Error())
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.InvalidPageParam))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(fmt.Errorf("failed to release room: %w", failure.NotFound("room not found"))))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("regular error")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("failed to allocate room: %w", failure.NoRoomAvailable("Double"))

	assert.True(t, failure.IsKind(wrapped, failure.KindNoRoomAvailable))
	assert.False(t, failure.IsKind(wrapped, failure.KindNotFound))
	assert.False(t, failure.IsKind(nil, failure.KindUnknown))
	assert.False(t, failure.IsKind(errors.New("plain"), failure.KindNotFound))
}
