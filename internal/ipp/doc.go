// Package ipp implements the subset of the Internet Printing Protocol
// needed to control printers and print jobs over HTTP.
//
// This package handles construction of binary IPP request packets, parsing
// of IPP response headers, and the six control operations: Pause-Printer,
// Resume-Printer, Purge-Jobs, Hold-Job, Release-Job, and Cancel-Job.
//
// # Wire Format
//
// An IPP request is a binary packet posted over HTTP with content type
// "application/ipp":
//
//	[0-1]   version (major, minor) - this package transmits 2.0
//	[2-3]   operation code (big-endian uint16)
//	[4-7]   request id (big-endian uint32, 1..2147483647)
//	[8]     operation-attributes tag (0x01)
//	[9..]   attributes: tag(1) nameLen(2,BE) name valueLen(2,BE) value
//	[last]  end-of-attributes tag (0x03)
//
// Every request carries attributes-charset ("utf-8") and
// attributes-natural-language ("en") first, in that order, followed by the
// printer or job identification and the requesting user name. Responses are
// parsed header-only (version, status code, request id); status codes above
// 0x00FF are operation failures.
//
// # Usage Example
//
//	client := ipp.NewClient(ipp.Endpoint{
//	    Host:     "printer.local",
//	    Port:     631,
//	    BasePath: "/ipp/print",
//	})
//
//	result := client.PausePrinter()
//	if !result.OK {
//	    log.Printf("pause failed: %v", result.Err)
//	}
//
//	result = client.CancelJob(42)
//
// # Error Handling
//
// Operations never panic and never return a raw error. Each returns a Result
// carrying the boolean outcome plus a typed *Error describing the failure
// kind: encoding, malformed response, IPP status failure, or transport.
//
// # Thread Safety
//
// A Client holds no mutable state between calls; requests are built fresh
// per call and request ids are drawn independently, so concurrent operations
// against the same printer are safe. Ordering between concurrent operations
// is not guaranteed; serialize calls if ordering matters.
package ipp
