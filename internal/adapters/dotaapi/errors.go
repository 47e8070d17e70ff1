package dotaapi

import "fmt"

// APIError captures a non-2xx response from the upstream API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dotaapi status %d: %s", e.Status, e.Body)
}
