package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterResponse is returned by POST /api/auth/register so the client
// can tell a fresh signup from a returning user.
type RegisterResponse struct {
	User    interface{} `json:"user"`
	Created bool        `json:"created"`
}
