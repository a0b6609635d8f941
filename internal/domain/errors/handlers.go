package errors

// ErrorInfo is the error body returned to API clients.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business code, e.g. "ACCOUNT_LINK_CONFLICT"
	Message string `json:"message"`           // Safe to show to the member
	Details any    `json:"details,omitempty"` // Omitted for auth and server failures
}

// MetaInfo describes the request a response belongs to.
type MetaInfo struct {
	RequestID     string `json:"request_id"`
	Authenticated bool   `json:"authenticated"` // Whether the session carried an authentication
}

// SuccessResponse wraps a payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps an ErrorInfo.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
