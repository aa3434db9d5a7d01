package services

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies every error a service can hand to the transport layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyMember
	KindPermissionDenied
	KindUnavailable
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyMember:
		return "already_member"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnavailable:
		return "unavailable"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the service-level message for an error chain, or a
// generic fallback for errors that never passed through a service boundary.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "something went wrong"
}

// FromBackend translates a Firestore SDK error into the service taxonomy.
// Permission and availability failures keep their identity so callers can
// surface them distinctly; everything else collapses to KindUnknown.
func FromBackend(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch status.Code(err) {
	case codes.NotFound:
		return WrapError(KindNotFound, "document not found", err)
	case codes.PermissionDenied:
		return WrapError(KindPermissionDenied, "permission denied", err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return WrapError(KindUnavailable, "backend unavailable, try again", err)
	default:
		return WrapError(KindUnknown, "backend request failed", err)
	}
}
