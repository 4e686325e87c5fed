package ipp

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ippctl/ippctl/internal/logging"
)

const (
	// DefaultRequestingUser is the identity sent as requesting-user-name
	// when the caller does not supply one.
	DefaultRequestingUser = "ippctl"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// contentTypeIPP is the media type for IPP message bodies.
	contentTypeIPP = "application/ipp"
)

// maxRequestID is the largest request id drawn; ids are in [1, 2147483647].
const maxRequestID = 1<<31 - 1

// RequestIDSource produces the 32-bit correlation id for one request.
// Sources must return values in [1, 2147483647].
type RequestIDSource func() uint32

func randomRequestID() uint32 {
	return uint32(rand.Int32N(maxRequestID)) + 1
}

// Result is the outcome of one IPP operation. OK mirrors the reference
// boolean contract; Err carries the typed cause for callers that need to
// distinguish transport failures from protocol ones.
type Result struct {
	OK    bool
	Op    Operation
	JobID int32 // 0 for printer-scoped operations
	Err   *Error
}

// Client issues IPP control operations against a single printer.
//
// A Client keeps no state between calls beyond its configuration, so one
// instance may be shared by concurrent callers. Retry and timeout policy
// live in the supplied HTTP client; failed operations are reported once
// and never retried here.
type Client struct {
	// Endpoint is the printer being controlled
	Endpoint Endpoint

	// RequestingUser is sent as requesting-user-name with every operation
	// (default: "ippctl")
	RequestingUser string

	// Username and Password enable HTTP Basic auth when both are set.
	// CUPS typically requires authentication for administrative operations.
	Username string
	Password string

	// HTTPClient is the underlying transport; its timeout configuration is
	// the only timeout applied
	HTTPClient *http.Client

	// RequestID supplies per-request correlation ids. Defaults to a random
	// source; tests inject a deterministic one.
	RequestID RequestIDSource
}

// NewClient creates a client for the given printer endpoint with default
// timeout, requesting user, and random request ids.
func NewClient(endpoint Endpoint) *Client {
	return &Client{
		Endpoint:       endpoint,
		RequestingUser: DefaultRequestingUser,
		HTTPClient:     &http.Client{Timeout: DefaultTimeout},
		RequestID:      randomRequestID,
	}
}

// SetTimeout sets the HTTP request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetAuth sets HTTP Basic auth credentials for administrative operations.
func (c *Client) SetAuth(username, password string) {
	c.Username = username
	c.Password = password
}

// PausePrinter stops the printer from scheduling new jobs.
func (c *Client) PausePrinter() Result {
	return c.do(OpPausePrinter, 0)
}

// ResumePrinter resumes a paused printer.
func (c *Client) ResumePrinter() Result {
	return c.do(OpResumePrinter, 0)
}

// PurgeJobs cancels all jobs on the printer.
func (c *Client) PurgeJobs() Result {
	return c.do(OpPurgeJobs, 0)
}

// HoldJob places the given job in the held state.
func (c *Client) HoldJob(jobID int32) Result {
	return c.do(OpHoldJob, jobID)
}

// ReleaseJob returns a held job to the pending state.
func (c *Client) ReleaseJob(jobID int32) Result {
	return c.do(OpReleaseJob, jobID)
}

// CancelJob cancels the given job.
func (c *Client) CancelJob(jobID int32) Result {
	return c.do(OpCancelJob, jobID)
}

// do runs one operation end to end: build the attribute set and packet,
// post it, parse the response header, and fold every failure into the
// Result. The printer owns the resulting job/printer state; nothing is
// cached or verified locally.
func (c *Client) do(op Operation, jobID int32) Result {
	requestID := c.requestID()

	var attrs []Attribute
	if op.jobScoped() {
		attrs = append(attrs,
			URIAttribute("job-uri", c.Endpoint.JobURI(jobID)),
			IntegerAttribute("job-id", jobID),
		)
	} else {
		attrs = append(attrs, URIAttribute("printer-uri", c.Endpoint.PrinterURI()))
	}
	attrs = append(attrs, NameAttribute("requesting-user-name", c.requestingUser()))

	packet, err := BuildRequest(op, requestID, attrs)
	if err != nil {
		return c.fail(op, jobID, asError(err, ErrKindEncoding))
	}

	logging.Debug("sending IPP operation",
		zap.Stringer("operation", op),
		zap.String("url", c.Endpoint.URL()),
		zap.Uint32("request_id", requestID),
	)
	logging.LogRawBytes("IPP request", packet)

	body, ipperr := c.post(packet)
	if ipperr != nil {
		return c.fail(op, jobID, ipperr)
	}

	logging.LogRawBytes("IPP response", body)

	resp, err := ParseResponse(body)
	if err != nil {
		return c.fail(op, jobID, asError(err, ErrKindMalformedResponse))
	}

	// Some servers echo a different request id than the one sent. Treat it
	// as a server quirk, not a failure, but leave a trace.
	if resp.RequestID != requestID {
		logging.Warn("IPP response request id does not match request",
			zap.Stringer("operation", op),
			zap.Uint32("sent", requestID),
			zap.Uint32("received", resp.RequestID),
		)
	}

	logging.Debug("IPP operation successful",
		zap.Stringer("operation", op),
		zap.Stringer("status", resp.Status),
		zap.Uint32("request_id", resp.RequestID),
	)

	return Result{OK: true, Op: op, JobID: jobID}
}

// post sends the packet to the printer's IPP endpoint and returns the raw
// response bytes. A non-2xx HTTP status is a transport failure; the body is
// not parsed in that case.
func (c *Client) post(packet []byte) ([]byte, *Error) {
	req, err := http.NewRequest(http.MethodPost, c.Endpoint.URL(), bytes.NewReader(packet))
	if err != nil {
		return nil, NewTransportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", contentTypeIPP)
	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewTransportError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError("failed to read response body", err)
	}

	return body, nil
}

func (c *Client) fail(op Operation, jobID int32, ipperr *Error) Result {
	fields := []zap.Field{
		zap.Stringer("operation", op),
		zap.String("printer", c.Endpoint.PrinterURI()),
		zap.Error(ipperr),
	}
	if op.jobScoped() {
		fields = append(fields, zap.Int32("job_id", jobID))
	}
	logging.Error(fmt.Sprintf("%s failed", op), fields...)

	return Result{OK: false, Op: op, JobID: jobID, Err: ipperr}
}

func (c *Client) requestID() uint32 {
	if c.RequestID != nil {
		return c.RequestID()
	}
	return randomRequestID()
}

func (c *Client) requestingUser() string {
	if c.RequestingUser != "" {
		return c.RequestingUser
	}
	return DefaultRequestingUser
}
