package pesapal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	MsgTokenUnavailable  = "could not obtain access token"
	errUnknownToken      = "unknown error, no token in gateway response"
	MsgNoRegisteredIPN   = "no registered IPN endpoint to use as notification id"
	errEmptyRefund       = "empty refund response from gateway"
	errMissingStatusDesc = "gateway response has no payment status description"
)

// APIError is the error member PesaPal embeds in response bodies. The gateway
// sends it as null, as a plain string or as an object; all three decode here.
type APIError struct {
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Raw     string `json:"-"`

	set bool
}

func (e *APIError) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		e.Raw = raw
		e.set = raw != ""
		return nil
	}
	var aux struct {
		Type      string          `json:"type"`
		ErrorType string          `json:"error_type"`
		Code      json.RawMessage `json:"code"`
		Message   string          `json:"message"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Type = aux.Type
	if e.Type == "" {
		e.Type = aux.ErrorType
	}
	e.Code = scalarString(aux.Code)
	e.Message = aux.Message
	// Success bodies carry an error object with every member null.
	e.set = e.Type != "" || e.Code != "" || e.Message != ""
	return nil
}

// Present reports whether the gateway actually sent an error.
func (e *APIError) Present() bool {
	return e != nil && e.set
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "":
		return e.Message
	case e.Raw != "":
		return e.Raw
	case e.Code != "" && e.Type != "":
		return e.Type + ": " + e.Code
	case e.Code != "":
		return e.Code
	case e.Type != "":
		return e.Type
	}
	return "gateway returned an error"
}

// StatusError is returned by the transport for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pesapal status=%d", e.StatusCode)
	}
	return fmt.Sprintf("pesapal status=%d: %s", e.StatusCode, e.Message)
}

// errorMessage flattens any error into the string carried by result Err
// fields. Embedded gateway errors keep only their message.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

// embeddedError looks for a top level error member in an arbitrary body.
func embeddedError(raw []byte) *APIError {
	var probe struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if probe.Error.Present() {
		return probe.Error
	}
	return nil
}

func isEmptyBody(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`))
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
