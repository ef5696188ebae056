package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeOK(t *testing.T) {
	cases := []struct {
		name   string
		env    Envelope
		wantOK bool
	}{
		{"success", Envelope{Code: 200, Status: "SUCCESS"}, true},
		{"wrong status", Envelope{Code: 200, Status: "FAILED"}, false},
		{"wrong code", Envelope{Code: 500, Status: "SUCCESS"}, false},
		{"empty", Envelope{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOK, tc.env.OK())
		})
	}
}

func TestProfileEnvelopeOK(t *testing.T) {
	assert.True(t, (&ProfileEnvelope{Code: 1000}).OK())
	assert.True(t, (&ProfileEnvelope{Code: 200}).OK())
	assert.False(t, (&ProfileEnvelope{Code: 500}).OK())
	assert.False(t, (&ProfileEnvelope{}).OK())
}

func TestErrorMessagePriority(t *testing.T) {
	full := Envelope{
		Error:     "top error",
		Exception: "exception text",
		Message:   "plain message",
		Data:      json.RawMessage(`{"message":"nested"}`),
	}
	assert.Equal(t, "top error", full.ErrorMessage())

	full.Error = ""
	assert.Equal(t, "exception text", full.ErrorMessage())

	full.Exception = ""
	assert.Equal(t, "plain message", full.ErrorMessage())

	full.Message = ""
	assert.Equal(t, "nested", full.ErrorMessage())

	full.Data = nil
	assert.Equal(t, "Request failed", full.ErrorMessage())
}

func TestProfileEnvelopeErrorMessage(t *testing.T) {
	env := ProfileEnvelope{Message: "profile says no"}
	assert.Equal(t, "profile says no", env.ErrorMessage())

	env.Message = ""
	env.Data = json.RawMessage(`{"message":"nested reason"}`)
	assert.Equal(t, "nested reason", env.ErrorMessage())
}

func TestDecodeEnvelopeNonJSON(t *testing.T) {
	resp := &Response{StatusCode: 502, Kind: KindText, Body: []byte("Bad Gateway")}
	_, err := DecodeEnvelope(resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Bad Gateway")

	empty := &Response{StatusCode: 204, Kind: KindEmpty}
	_, err = DecodeEnvelope(empty)
	assert.Error(t, err)
}

func TestExtractID(t *testing.T) {
	cases := []struct {
		name string
		data string
		keys []string
		want int
	}{
		{"bare number", `42`, nil, 42},
		{"number field", `{"basicInfoId": 7}`, []string{"basicInfoId", "id"}, 7},
		{"fallback key", `{"id": 9}`, []string{"basicInfoId", "id"}, 9},
		{"numeric string", `{"id": "15"}`, []string{"id"}, 15},
		{"first usable key wins", `{"basicInfoId": 0, "id": 3}`, []string{"basicInfoId", "id"}, 3},
		{"negative rejected", `{"id": -4}`, []string{"id"}, 0},
		{"fraction rejected", `{"id": 4.5}`, []string{"id"}, 0},
		{"missing", `{"other": 1}`, []string{"id"}, 0},
		{"empty data", ``, []string{"id"}, 0},
		{"non-object", `"hello"`, []string{"id"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractID(json.RawMessage(tc.data), tc.keys...))
		})
	}
}

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "short", TruncateMessage("short", 250))
	assert.Equal(t, "", TruncateMessage("", 250))

	long := strings.Repeat("x", 300)
	got := TruncateMessage(long, 250)
	assert.Len(t, got, 253)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Zero max disables truncation.
	assert.Equal(t, long, TruncateMessage(long, 0))
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "?professionalsProfileId=1&basicInfoId=2",
		Query("professionalsProfileId", "1", "basicInfoId", "2"))
	assert.Equal(t, "?name=New+York", Query("name", "New York"))
	assert.Equal(t, "", Query())
}
