package transport

import "github.com/fastygo/planner/domain"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// ErrorBody carries the message and, for validation failures, every problem found.
type ErrorBody struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ListMeta accompanies collection responses.
type ListMeta struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope. meta may carry a diagnostic payload,
// e.g. the store status on a failed health check.
func NewError(code string, body ErrorBody, meta interface{}) Envelope {
	return Envelope{
		Status: StatusError,
		Code:   code,
		Error:  &body,
		Meta:   meta,
	}
}

// Invalid is the 400 envelope for malformed requests.
func Invalid(message string, details ...string) Envelope {
	return NewError(string(domain.ErrCodeInvalid), ErrorBody{Message: message, Details: details}, nil)
}
