package apiclient

import (
	"encoding/json"
	"fmt"
)

// Envelope is the backend response convention: a payload nested under "data"
// keyed by resource name. The key is inconsistently named per endpoint
// ("invoices" vs "platformInvoices", "taxes" vs "serviceTaxes"), so decoding
// tries the caller's candidate keys in order and falls back to the sole entry
// when the map has exactly one.
type Envelope struct {
	Data    map[string]json.RawMessage `json:"data"`
	Message string                     `json:"message,omitempty"`
}

// Unmarshal decodes the payload under the first matching key into out.
func (e *Envelope) Unmarshal(out interface{}, keys ...string) error {
	if e.Data == nil {
		return fmt.Errorf("response envelope has no data")
	}
	for _, key := range keys {
		if raw, ok := e.Data[key]; ok {
			return json.Unmarshal(raw, out)
		}
	}
	if len(e.Data) == 1 {
		for _, raw := range e.Data {
			return json.Unmarshal(raw, out)
		}
	}
	return fmt.Errorf("none of the keys %v present in response data", keys)
}

// errorBody is the backend's error response shape. 422 responses carry the
// field→messages map under "errors".
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (b *errorBody) message() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
