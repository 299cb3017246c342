package scanner

import (
	"errors"
	"fmt"
)

// Kinds of scan failure. Match them with errors.Is.
var (
	ErrInvalidAddress = errors.New("invalid target address")
	ErrUnreachable    = errors.New("node provider unreachable")
	ErrBlockFetch     = errors.New("block fetch failed")
	ErrInvalidRange   = errors.New("invalid block range")
	ErrSender         = errors.New("transaction sender unrecoverable")
)

// ScanError reports why a scan stopped. Height is set for block-level failures.
type ScanError struct {
	Kind   error
	Height uint64
	Err    error
}

func (e *ScanError) Error() string {
	switch {
	case e.Kind == ErrBlockFetch || e.Kind == ErrSender:
		if e.Err != nil {
			return fmt.Sprintf("%v at block %d: %v", e.Kind, e.Height, e.Err)
		}
		return fmt.Sprintf("%v at block %d", e.Kind, e.Height)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *ScanError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func scanErr(kind error, height uint64, err error) *ScanError {
	return &ScanError{Kind: kind, Height: height, Err: err}
}
