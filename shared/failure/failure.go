package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of its HTTP code.
type Kind string

const (
	KindUnknown                Kind = ""
	KindBadRequest             Kind = "BadRequest"
	KindUnauthorized           Kind = "Unauthorized"
	KindForbidden              Kind = "Forbidden"
	KindNotFound               Kind = "NotFound"
	KindConflict               Kind = "Conflict"
	KindDuplicateKey           Kind = "DuplicateKey"
	KindNoRoomAvailable        Kind = "NoRoomAvailable"
	KindInvalidQuantityOrPrice Kind = "InvalidQuantityOrPrice"
	KindPersistenceUnavailable Kind = "PersistenceUnavailable"
	KindInternal               Kind = "Internal"
	KindUnimplemented          Kind = "Unimplemented"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Kind: KindBadRequest}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Kind: KindBadRequest}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Kind: KindForbidden}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource", Kind: KindForbidden}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindBadRequest,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindBadRequest,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindUnauthorized,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Kind:    KindInternal,
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
		Kind:    KindUnimplemented,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindConflict,
	}
}

// DuplicateKey reports an insert whose key already exists.
func DuplicateKey(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindDuplicateKey,
	}
}

// NoRoomAvailable reports that no available room matches the requested type.
func NoRoomAvailable(roomType string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: "no available room of type " + roomType,
		Kind:    KindNoRoomAvailable,
	}
}

// InvalidQuantityOrPrice reports a medication charge with a non-positive quantity or price.
func InvalidQuantityOrPrice(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
		Kind:    KindInvalidQuantityOrPrice,
	}
}

// PersistenceUnavailable reports that the database could not be reached.
func PersistenceUnavailable(err error) error {
	msg := "persistence unavailable"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		Kind:    KindPersistenceUnavailable,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindForbidden,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of a failure anywhere in the error chain.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsKind reports whether err carries a failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
