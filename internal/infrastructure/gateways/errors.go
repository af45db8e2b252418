package gateways

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Configuration errors surfaced by the factory.
var (
	ErrGatewayNotConfigured   = errors.New("gateway não configurado")
	ErrGatewayInactive        = errors.New("gateway não está ativo")
	ErrUnsupportedGatewayType = errors.New("tipo de gateway não suportado")
)

const maxRawBodySnippet = 200

// TransportError wraps a connection-level failure reaching a sub-acquirer.
// These are retried by the client before being surfaced; HTTP error statuses
// never become TransportErrors.

type TransportError struct {
	BaseMsg string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.BaseMsg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a structured non-2xx response from a sub-acquirer. The surfaced
// message follows the convention "<base>: <message> (Código: <error>)"; when
// the error field is itself an object, its nested message wins; when the body
// cannot be parsed at all, up to 200 characters of it are appended raw. A
// parseable body carrying neither field surfaces the base message alone.

type APIError struct {
	BaseMsg    string
	StatusCode int
	Code       string
	Message    string
	RawBody    string

	parsed bool
}

func (e *APIError) Error() string {
	msg := e.BaseMsg
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Code != "" {
		msg += fmt.Sprintf(" (Código: %s)", e.Code)
	}
	if !e.parsed && e.Message == "" && e.Code == "" && e.RawBody != "" {
		snippet := e.RawBody
		if len(snippet) > maxRawBodySnippet {
			snippet = snippet[:maxRawBodySnippet]
		}
		msg += ": " + snippet
	}
	return msg
}

// newAPIError classifies a non-2xx body. Sub-acquirers answer either
// {"error":"code","message":"text"} or {"error":{"message":"text"}}.
func newAPIError(baseMsg string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{BaseMsg: baseMsg, StatusCode: statusCode, RawBody: string(body)}

	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	apiErr.parsed = true

	apiErr.Message = strings.TrimSpace(envelope.Message)

	if len(envelope.Error) > 0 {
		var code string
		if err := json.Unmarshal(envelope.Error, &code); err == nil {
			apiErr.Code = strings.TrimSpace(code)
		} else {
			var nested struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(envelope.Error, &nested); err == nil && strings.TrimSpace(nested.Message) != "" {
				apiErr.Message = strings.TrimSpace(nested.Message)
			}
		}
	}

	return apiErr
}
