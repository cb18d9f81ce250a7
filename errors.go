package sheetbatch

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a sheet or spreadsheet lookup missed the cache.
var ErrNotFound = errors.New("not found")

// ErrInvalidRange indicates a degenerate or out-of-bounds staged range.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidArgument indicates an unrecognised enum value or a cell value that
// does not match the requested value kind.
var ErrInvalidArgument = errors.New("invalid argument")

// RemoteError wraps a failure reported by the Sheets API. The wrapped error is
// surfaced unchanged; no retry is attempted.
type RemoteError struct {
	Op            string
	SpreadsheetID string
	Err           error
}

func (e *RemoteError) Error() string {
	if e.SpreadsheetID == "" {
		return fmt.Sprintf("sheets %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("sheets %s (%s): %v", e.Op, e.SpreadsheetID, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
