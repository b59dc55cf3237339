package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
	// Warning carries non-fatal notices, e.g. already-enrolled courses on
	// registration.
	Warning string `json:"warning,omitempty"`
}
