package ewsxml

import (
	"errors"
	"fmt"
)

var (
	ErrNoOpenElement  = errors.New("no element is open")
	ErrNoPendingStart = errors.New("no start tag is pending attributes")
)

// SerializationError is returned when XML emission fails. It is fatal for
// the current request attempt and is never retried by this package.
type SerializationError struct {
	Op  string
	Err error
}

func (err SerializationError) Error() string {
	return fmt.Sprintf("xml serialization failed on %s: %s", err.Op, err.Err)
}

func (err SerializationError) Unwrap() error {
	return err.Err
}
