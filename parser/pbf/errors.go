package pbf

import (
	"fmt"

	"github.com/pkg/errors"
)

// FileUnavailableError is returned by Open when the PBF file cannot be
// opened for reading.
type FileUnavailableError struct {
	Path string
	Err  error
}

func (e *FileUnavailableError) Error() string {
	return fmt.Sprintf("pbf file %s unavailable: %v", e.Path, e.Err)
}

func (e *FileUnavailableError) Cause() error  { return e.Err }
func (e *FileUnavailableError) Unwrap() error { return e.Err }

// DecodeError is returned when the file is truncated or structurally
// corrupt. Offset is the file position of the blob that failed to decode.
type DecodeError struct {
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding pbf blob at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Cause() error  { return e.Err }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsFileUnavailable reports whether err or any error it wraps is a
// FileUnavailableError.
func IsFileUnavailable(err error) bool {
	var fe *FileUnavailableError
	return errors.As(err, &fe)
}

// IsDecodeError reports whether err or any error it wraps is a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
