package ipp

import (
	"encoding/binary"
	"fmt"
)

// responseHeaderLen is the fixed size of an IPP response header: version (2),
// status code (2), request id (4).
const responseHeaderLen = 8

// maxSuccessStatus is the upper bound of the successful-ok status family.
// 0x0000 is successful-ok; the rest of the range covers partial-success
// variants such as successful-ok-ignored-or-substituted-attributes.
const maxSuccessStatus StatusCode = 0x00FF

// StatusCode is the 16-bit result code carried in an IPP response.
type StatusCode uint16

// Success reports whether the code is in the successful-ok family.
func (c StatusCode) Success() bool {
	return c <= maxSuccessStatus
}

// String returns the registered name for well-known status codes and a hex
// rendering otherwise.
func (c StatusCode) String() string {
	switch c {
	case 0x0000:
		return "successful-ok"
	case 0x0001:
		return "successful-ok-ignored-or-substituted-attributes"
	case 0x0002:
		return "successful-ok-conflicting-attributes"
	case 0x0400:
		return "client-error-bad-request"
	case 0x0401:
		return "client-error-forbidden"
	case 0x0402:
		return "client-error-not-authenticated"
	case 0x0403:
		return "client-error-not-authorized"
	case 0x0404:
		return "client-error-not-possible"
	case 0x0406:
		return "client-error-not-found"
	case 0x0503:
		return "server-error-service-unavailable"
	case 0x0506:
		return "server-error-not-accepting-jobs"
	default:
		return fmt.Sprintf("status(0x%04x)", uint16(c))
	}
}

// Response is the decoded header of an IPP response. The attribute body that
// may follow the header is not parsed; none of the control operations need it.
type Response struct {
	VersionMajor byte
	VersionMinor byte
	Status       StatusCode
	RequestID    uint32
}

// ParseResponse decodes an IPP response header and validates the status code.
//
// It fails with a MalformedResponse error when fewer than 8 bytes are present
// and with an IppOperationFailed error when the status code is above the
// success range. The echoed request id is returned but not checked against
// the id that was sent; callers that care should compare it themselves.
func ParseResponse(data []byte) (*Response, error) {
	if len(data) < responseHeaderLen {
		return nil, NewMalformedResponseError(
			fmt.Sprintf("response is %d bytes, need at least %d", len(data), responseHeaderLen))
	}

	resp := &Response{
		VersionMajor: data[0],
		VersionMinor: data[1],
		Status:       StatusCode(binary.BigEndian.Uint16(data[2:4])),
		RequestID:    binary.BigEndian.Uint32(data[4:8]),
	}

	if !resp.Status.Success() {
		return nil, NewOperationFailedError(resp.Status)
	}

	return resp, nil
}
