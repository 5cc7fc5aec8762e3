package model

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
)

// ErrCancelled reports a user-initiated stop. It is informational and is
// never rendered as a failure dialog.
var ErrCancelled = errors.New("cancelled by user")

// TransportKind classifies a TransportError for retry decisions
type TransportKind string

const (
	// TransportTimeout covers deadline and timeout failures
	TransportTimeout TransportKind = "timeout"

	// TransportConnection covers refused, reset, and unreachable failures
	TransportConnection TransportKind = "connection"

	// TransportOther covers every remaining transport failure, including
	// HTTP error statuses. Never retried.
	TransportOther TransportKind = "other"
)

// TransportError reports a failed HTTP exchange
type TransportError struct {
	Kind TransportKind
	URL  string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %s: %v", e.Kind, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable returns true when another attempt may succeed
func (e *TransportError) Retryable() bool {
	return e.Kind == TransportTimeout || e.Kind == TransportConnection
}

// ClassifyTransport maps a transport failure onto the retry taxonomy; the
// download service and the manifest client key the same retry rules off it.
func ClassifyTransport(err error) TransportKind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TransportTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TransportTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return TransportConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return TransportConnection
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return TransportConnection
	}

	return TransportOther
}

// ParseError reports a malformed manifest or settings document. Distinct
// from transport failures and never retried.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a precondition failure: invalid game directory,
// unsupported archive format, or an archive layout mismatch.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ExtractionError reports a failed unpack. Output carries the external
// tool's diagnostic tail when a decompressor binary was involved.
type ExtractionError struct {
	Tool   string
	Output string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("extract (%s): %v: %s", e.Tool, e.Err, e.Output)
	}
	return fmt.Sprintf("extract (%s): %v", e.Tool, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a copy, remove, or create failure
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
