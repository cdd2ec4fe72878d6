package etherpad

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope codes returned by the server.
const (
	CodeOK                = 0
	CodeInvalidParameters = 1
	CodeInternalError     = 2
	CodeInvalidFunction   = 3
	CodeInvalidAPIKey     = 4
)

// Envelope is the response shape shared by every operation.
// Code and Message are pointers so a missing field can be told apart from a
// zero value.
type Envelope struct {
	Code    *int            `json:"code"`
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// decodeEnvelope turns a raw response body into an Envelope.
func decodeEnvelope(op string, body []byte) (Envelope, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Envelope{}, newError(KindTransport, op, ErrEmptyResponse.Error(), ErrEmptyResponse)
	}
	if !json.Valid(body) {
		return Envelope{}, newError(KindTransport, op, ErrInvalidJSON.Error(), ErrInvalidJSON)
	}
	if isEmptyValue(body) {
		return Envelope{}, newError(KindTransport, op, ErrEmptyResponse.Error(), ErrEmptyResponse)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, newError(KindMalformedEnvelope, op, "response is not an envelope object", err)
	}
	return env, nil
}

// classify maps an envelope onto its payload or a classified error.
func classify(op string, env Envelope) (json.RawMessage, error) {
	if env.Code == nil {
		return nil, newError(KindMalformedEnvelope, op, "API response has no code", nil)
	}
	if env.Message == nil {
		return nil, newError(KindMalformedEnvelope, op, "API response has no message", nil)
	}

	code, msg := *env.Code, *env.Message
	var kind Kind
	switch code {
	case CodeOK:
		return payload(env.Data), nil
	case CodeInvalidParameters, CodeInvalidAPIKey:
		kind = KindInvalidParameters
	case CodeInternalError:
		kind = KindInternal
	case CodeInvalidFunction:
		kind = KindInvalidOperation
	default:
		return nil, &Error{
			Kind:    KindUnexpectedResponse,
			Op:      op,
			Code:    code,
			Message: fmt.Sprintf("an unexpected error occurred whilst handling the response (code %d)", code),
		}
	}

	return nil, &Error{
		Kind:    kind,
		Op:      op,
		Code:    code,
		Message: msg,
	}
}

// payload normalizes an absent or null data field to nil.
func payload(data json.RawMessage) json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	return data
}

// isEmptyValue reports whether body is a JSON value that carries nothing:
// null, false, a zero number, "", "0" or an empty array.
func isEmptyValue(body []byte) bool {
	if body[0] == '{' {
		return false
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return false
	}

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == "" || v == "0"
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
