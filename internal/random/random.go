package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Random produces short identifiers, such as the tags that mark each
// connection's log lines.
type Random interface {
	String(length int) (string, error)
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

func (ran *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}
