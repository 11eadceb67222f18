package api

import "encoding/json"

// envelope is the standard response wrapper the backend returns on every
// enveloped endpoint: {success, data, error}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
}

// ErrorBody is the server-declared error payload inside an envelope.
type ErrorBody struct {
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
	Details   json.RawMessage `json:"details,omitempty"`
}
