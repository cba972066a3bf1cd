package api

import "fmt"

// NetworkError is returned when the document of a day could not be retrieved, because of a
// transport failure or a timeout. An error status is not a NetworkError.
type NetworkError struct {
	Day int
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch data for day %d: %v", e.Day, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
