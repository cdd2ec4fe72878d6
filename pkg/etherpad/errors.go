package etherpad

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindInvalidConfiguration means the client could not be constructed.
	KindInvalidConfiguration Kind = iota + 1

	// KindTransport means no usable response came back: the request failed,
	// the body was empty, or the body was not JSON.
	KindTransport

	// KindMalformedEnvelope means the body was JSON but lacked code or message.
	KindMalformedEnvelope

	// KindInvalidParameters is reported for code 1 (bad parameters) and
	// code 4 (bad API key). Both are caller-input errors.
	KindInvalidParameters

	// KindInternal is reported for code 2.
	KindInternal

	// KindInvalidOperation is reported for code 3.
	KindInvalidOperation

	// KindUnexpectedResponse is reported for any code outside 0-4.
	KindUnexpectedResponse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindTransport:
		return "transport error"
	case KindMalformedEnvelope:
		return "malformed envelope"
	case KindInvalidParameters:
		return "invalid parameters"
	case KindInternal:
		return "internal error"
	case KindInvalidOperation:
		return "invalid operation"
	case KindUnexpectedResponse:
		return "unexpected response"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrInvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
	ErrTransport            = &Error{Kind: KindTransport}
	ErrMalformedEnvelope    = &Error{Kind: KindMalformedEnvelope}
	ErrInvalidParameters    = &Error{Kind: KindInvalidParameters}
	ErrInternal             = &Error{Kind: KindInternal}
	ErrInvalidOperation     = &Error{Kind: KindInvalidOperation}
	ErrUnexpectedResponse   = &Error{Kind: KindUnexpectedResponse}
)

// Transport sub-cases, wrapped by a KindTransport error.
var (
	ErrEmptyResponse = errors.New("empty or no response from the server")
	ErrInvalidJSON   = errors.New("response is not valid JSON")

	// ErrResponseTooLarge is wrapped when a body exceeds the read limit.
	ErrResponseTooLarge = errors.New("response body too large")
)

// Error is returned by every Client method.
type Error struct {
	Kind Kind

	// Op is the operation name, empty for construction errors.
	Op string

	// Code is the envelope code, or -1 when no envelope was classified.
	Code int

	// Message is the server's message, or a description of the local failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil && e.Err.Error() != msg {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	if e.Op == "" {
		return fmt.Sprintf("etherpad: %s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("etherpad %s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Message == "" && t.Err == nil
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsInvalidAPIKey reports whether the server rejected the API key (code 4).
func IsInvalidAPIKey(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidAPIKey
}

func newError(kind Kind, op, msg string, err error) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Code:    -1,
		Message: msg,
		Err:     err,
	}
}
