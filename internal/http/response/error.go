package response

import (
	"errors"
	"fmt"
	"raw_httpd/types"
)

// HandlerError carries the status a failed handler wants answered with.
type HandlerError struct {
	Status types.StatusCode
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Status, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// FromError turns any decode or handler error into a bodyless response.
// Errors that do not name a status answer 404.
func FromError(err error) *Response {
	var herr *HandlerError
	if errors.As(err, &herr) && herr.Status != 0 {
		return New(herr.Status)
	}
	return NotFound()
}
