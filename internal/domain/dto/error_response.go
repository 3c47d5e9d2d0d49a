package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint on failure.
//
// It implements the error interface so it can travel through Gin's
// error list and still render as the API contract.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date"`             // Human-readable error message
	ErrorDetails string    `json:"error,omitempty" example:"day out of range"` // Underlying error detail, if any
	Timestamp    time.Time `json:"timestamp"`                                  // Time the error was produced
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
