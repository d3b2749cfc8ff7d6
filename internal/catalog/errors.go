package catalog

import "fmt"

// FetchError is returned when the books document is answered with a
// non-success status.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ParseError is returned when the books document is not a JSON array of
// book objects.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid books document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
