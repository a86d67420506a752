package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpUnprocessableError     = "unprocessable_entity"
	HttpNotFoundError          = "not_found"
	HttpInvalidIdentifierError = "invalid_identifier"
	HttpPayloadTooLargeError   = "payload_too_large"
)

// ErrorResponse is the error response body for every failed request.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
