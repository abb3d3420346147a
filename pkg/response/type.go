package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal details from callers.
	DefaultErrorMessage = "Something went wrong"
	// InternalServerErrorCode marks unclassified failures.
	InternalServerErrorCode = 500
)
