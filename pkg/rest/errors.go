package rest

import "fmt"

// NetworkError means no usable response was received (transport failure,
// timeout, cancelled context).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %s: %v", e.URL, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError covers non-2xx responses other than 404, and 2xx responses whose
// payload could not be decoded.
type ServerError struct {
	URL    string
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s: status %d: %s", e.URL, e.Status, e.Body)
}

// NotFoundError is a 404 on get/update/delete of a missing id.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("not found: %s", e.URL) }
