package request

import (
	"errors"
	"fmt"
	"raw_httpd/types"
)

var (
	ErrInvalidFormat   = errors.New("invalid request format")
	ErrInvalidEncoding = errors.New("request is not valid UTF-8")
	ErrIncomplete      = errors.New("incomplete request")
	ErrTooLarge        = fmt.Errorf("%w: request too large", ErrInvalidFormat)

	ErrParseMethod   = types.ErrParseMethod
	ErrParseProtocol = types.ErrParseProtocol
)
