package types

// SuccessEnvelope wraps every successful API payload: entity snapshots,
// view state, search hits and session info all ride under "data".
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Code is one of the pkg/errors
// codes; Details is only populated for codes that allow it (validation
// field messages, transition from/to pairs).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
