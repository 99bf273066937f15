package ens

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHexEncoding is returned when a content hash is not valid
	// 0x-prefixed hex.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")
	// ErrTruncatedInput is returned when a content hash is shorter than the
	// header of its scheme.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidUtf8Payload is returned when a text payload is not valid UTF-8.
	ErrInvalidUtf8Payload = errors.New("invalid utf-8 payload")
	// ErrNotContentAddressed is returned when a CID is requested from a
	// content hash whose scheme does not carry one.
	ErrNotContentAddressed = errors.New("content hash is not content addressed")
)

// DecodeError describes why a raw content hash could not be decoded.
// Use errors.Is against the Err* sentinels to branch on the cause.
type DecodeError struct {
	Input  string
	Scheme Scheme
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Scheme == SchemeUnknown {
		return fmt.Sprintf("decode content hash %q: %s", e.Input, e.Err)
	}
	return fmt.Sprintf("decode %s content hash %q: %s", e.Scheme, e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(input string, scheme Scheme, err error) error {
	return &DecodeError{Input: input, Scheme: scheme, Err: err}
}
