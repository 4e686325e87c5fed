package ipp

import "fmt"

// Operation identifies an IPP operation by its 16-bit operation code.
// Codes are fixed by RFC 8011 section 5.4.15 and never derived at runtime.
type Operation uint16

const (
	// OpCancelJob cancels a single job (RFC 8011 section 4.3.3)
	OpCancelJob Operation = 0x0008

	// OpHoldJob places a pending job in the held state (RFC 8011 section 4.3.5)
	OpHoldJob Operation = 0x000C

	// OpReleaseJob returns a held job to the pending state (RFC 8011 section 4.3.6)
	OpReleaseJob Operation = 0x000D

	// OpPausePrinter stops the printer from scheduling jobs (RFC 8011 section 4.2.7)
	OpPausePrinter Operation = 0x0010

	// OpResumePrinter resumes a paused printer (RFC 8011 section 4.2.8)
	OpResumePrinter Operation = 0x0011

	// OpPurgeJobs cancels all jobs on the printer (RFC 8011 section 4.2.9)
	OpPurgeJobs Operation = 0x0012
)

// jobScoped reports whether the operation targets a single job
// (carrying job-uri and job-id) rather than the whole printer.
func (op Operation) jobScoped() bool {
	switch op {
	case OpCancelJob, OpHoldJob, OpReleaseJob:
		return true
	default:
		return false
	}
}

// String returns the registered IPP name of the operation.
func (op Operation) String() string {
	switch op {
	case OpCancelJob:
		return "Cancel-Job"
	case OpHoldJob:
		return "Hold-Job"
	case OpReleaseJob:
		return "Release-Job"
	case OpPausePrinter:
		return "Pause-Printer"
	case OpResumePrinter:
		return "Resume-Printer"
	case OpPurgeJobs:
		return "Purge-Jobs"
	default:
		return fmt.Sprintf("unknown(0x%04x)", uint16(op))
	}
}
