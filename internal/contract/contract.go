// Package contract defines the request and response shapes of the contact API
// and the validation rules applied to a contact submission.
package contract

// ContactPath serves both the create (POST) and list (GET) operations.
const ContactPath = "/api/contact"

// ValidationError identifies the first input field that failed its constraint.
// It is returned to the client as the 400 response body.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ErrorBody is the response body for non-validation failures (404, 500).
type ErrorBody struct {
	Message string `json:"message"`
}
