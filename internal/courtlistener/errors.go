package courtlistener

import "fmt"

// InvalidQueryError indicates user input that cannot form a valid request.
// It is always returned before any network call is attempted.
type InvalidQueryError struct {
	Reason string
}

func (e InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Reason)
}

// RequestError wraps a transport-level failure: the request could not be
// sent or no response was received.
type RequestError struct {
	Err error
}

func (e RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e RequestError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Endpoint, e.StatusCode)
}

// DecodeError indicates a response body that was not the JSON this client
// expects, including records missing required fields.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
