package ipp

import "fmt"

// Endpoint identifies a printer's IPP service. URIs are derived from these
// fields per call and never cached.
type Endpoint struct {
	Host     string // Hostname or IP address
	Port     int    // IPP service port, typically 631
	TLS      bool   // Use ipps/https schemes
	BasePath string // Queue path, e.g. "/ipp/print" or "/printers/office"
}

// PrinterURI returns the ipp[s] URI identifying the printer, used as the
// printer-uri attribute in printer-scoped operations.
func (e Endpoint) PrinterURI() string {
	scheme := "ipp"
	if e.TLS {
		scheme = "ipps"
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, e.Host, e.Port, e.BasePath)
}

// JobURI returns the URI identifying a single job on the printer, used as
// the job-uri attribute in job-scoped operations.
func (e Endpoint) JobURI(jobID int32) string {
	return fmt.Sprintf("%s/%d", e.PrinterURI(), jobID)
}

// URL returns the http[s] URL the request bytes are posted to.
func (e Endpoint) URL() string {
	scheme := "http"
	if e.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, e.Host, e.Port, e.BasePath)
}

// String returns the printer URI.
func (e Endpoint) String() string {
	return e.PrinterURI()
}
