// Package handlers implements the HTTP surface of the ecycle API: huma
// operations for JSON endpoints and echo handlers for multipart uploads and
// HTML certificates.
package handlers

// ErrorResponse is the error body returned by the echo handlers.
type ErrorResponse struct {
	Error string `json:"error" example:"pickup not found"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
