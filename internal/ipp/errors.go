package ipp

import "fmt"

// ErrorKind represents the category of failure during an IPP operation.
type ErrorKind int

const (
	// ErrKindEncoding indicates an attribute name or value exceeded the
	// 16-bit length field and the request could not be built.
	ErrKindEncoding ErrorKind = iota
	// ErrKindMalformedResponse indicates the printer returned fewer than the
	// 8 bytes required for an IPP response header.
	ErrKindMalformedResponse
	// ErrKindOperationFailed indicates the printer returned an IPP status
	// code above the success range.
	ErrKindOperationFailed
	// ErrKindTransport indicates an HTTP-level failure (connection refused,
	// timeout, non-2xx status) before any IPP parsing took place.
	ErrKindTransport
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindEncoding:
		return "EncodingError"
	case ErrKindMalformedResponse:
		return "MalformedResponse"
	case ErrKindOperationFailed:
		return "IppOperationFailed"
	case ErrKindTransport:
		return "TransportError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error describes a failed IPP operation. Operations convert every failure
// path into one of these; none escape a Client call as a panic or raw error.
type Error struct {
	Kind       ErrorKind  // Category of failure
	Message    string     // Human-readable description
	StatusCode StatusCode // IPP status code (ErrKindOperationFailed only)
	HTTPStatus int        // HTTP status code (ErrKindTransport, if applicable)
	Err        error      // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEncodingError creates an attribute encoding error.
func NewEncodingError(message string) *Error {
	return &Error{Kind: ErrKindEncoding, Message: message}
}

// NewMalformedResponseError creates a response parse error.
func NewMalformedResponseError(message string) *Error {
	return &Error{Kind: ErrKindMalformedResponse, Message: message}
}

// NewOperationFailedError creates an error for an IPP status code outside
// the success range.
func NewOperationFailedError(code StatusCode) *Error {
	return &Error{
		Kind:       ErrKindOperationFailed,
		Message:    fmt.Sprintf("printer returned status 0x%04x", uint16(code)),
		StatusCode: code,
	}
}

// NewTransportError creates an HTTP-level transport error.
func NewTransportError(message string, err error) *Error {
	return &Error{Kind: ErrKindTransport, Message: message, Err: err}
}

// NewHTTPStatusError creates a transport error for a non-2xx HTTP response.
func NewHTTPStatusError(statusCode int) *Error {
	return &Error{
		Kind:       ErrKindTransport,
		Message:    fmt.Sprintf("unexpected HTTP status %d", statusCode),
		HTTPStatus: statusCode,
	}
}

// IsEncodingError checks if an error is an attribute encoding error.
func IsEncodingError(err error) bool {
	return kindOf(err) == ErrKindEncoding
}

// IsMalformedResponse checks if an error is a response parse error.
func IsMalformedResponse(err error) bool {
	return kindOf(err) == ErrKindMalformedResponse
}

// IsOperationFailed checks if an error is an IPP status failure.
func IsOperationFailed(err error) bool {
	return kindOf(err) == ErrKindOperationFailed
}

// IsTransportError checks if an error is an HTTP transport error.
func IsTransportError(err error) bool {
	return kindOf(err) == ErrKindTransport
}

func kindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrorKind(-1)
}

// asError returns err as *Error, wrapping foreign errors under the given
// kind so operation results always carry a classified cause.
func asError(err error, kind ErrorKind) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}
