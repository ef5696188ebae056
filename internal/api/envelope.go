package api

import (
	"encoding/json"
	"strconv"
	"strings"

	"bookmystars_client/pkg/apperrors"
)

// The backend speaks two envelope dialects. Most entity endpoints use the
// standard one; the style-profile and professionals-profile family uses its
// own code space where 1000 means success. Each dialect gets its own decoder
// so call sites never probe fields ad hoc.

// Envelope is the standard response envelope.
type Envelope struct {
	Code      int             `json:"code"`
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Exception string          `json:"exception,omitempty"`
}

// OK reports whether the envelope signals success. Both fields must agree.
func (e *Envelope) OK() bool {
	return e.Code == 200 && e.Status == "SUCCESS"
}

// ErrorMessage extracts the failure message in fixed priority order:
// error, exception, message, then data.message.
func (e *Envelope) ErrorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Exception != "" {
		return e.Exception
	}
	if e.Message != "" {
		return e.Message
	}
	return dataMessage(e.Data)
}

// ProfileEnvelope is the envelope used by the style-profile and
// professionals-profile endpoints.
type ProfileEnvelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *ProfileEnvelope) OK() bool {
	return e.Code == 1000 || e.Code == 200
}

func (e *ProfileEnvelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return dataMessage(e.Data)
}

func dataMessage(data json.RawMessage) string {
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	return "Request failed"
}

// DecodeEnvelope parses a standard envelope out of a response.
func DecodeEnvelope(resp *Response) (*Envelope, error) {
	if resp.Kind != KindJSON {
		return nil, nonJSONError(resp)
	}
	var env Envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &env, nil
}

// DecodeProfileEnvelope parses a profile-family envelope out of a response.
func DecodeProfileEnvelope(resp *Response) (*ProfileEnvelope, error) {
	if resp.Kind != KindJSON {
		return nil, nonJSONError(resp)
	}
	var env ProfileEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &env, nil
}

func nonJSONError(resp *Response) *apperrors.AppError {
	msg := "Unexpected empty response"
	if resp.Kind == KindText {
		msg = strings.TrimSpace(string(resp.Body))
	}
	return apperrors.ServerError("transport", TruncateMessage(msg, 250), resp.StatusCode)
}

// ExtractID pulls a positive numeric id out of envelope data, trying the
// given keys in order. Accepts JSON numbers, numeric strings and a bare
// top-level number. Returns 0 when nothing usable is found.
func ExtractID(data json.RawMessage, keys ...string) int {
	if len(data) == 0 {
		return 0
	}

	var direct float64
	if err := json.Unmarshal(data, &direct); err == nil {
		return positiveInt(direct)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return 0
	}
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var num float64
		if err := json.Unmarshal(raw, &num); err == nil {
			if id := positiveInt(num); id > 0 {
				return id
			}
			continue
		}
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

func positiveInt(f float64) int {
	n := int(f)
	if n > 0 && float64(n) == f {
		return n
	}
	return 0
}

// TruncateMessage shortens long technical messages for display.
func TruncateMessage(msg string, max int) string {
	if max <= 0 || len(msg) <= max {
		return msg
	}
	return msg[:max] + "..."
}
