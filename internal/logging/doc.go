// Package logging provides the application-wide zap logger.
//
// Logging is silent unless the IPPCTL_LOG_LEVEL environment variable (or an
// explicit Initialize call) selects a level, so normal CLI output is never
// mixed with diagnostics. LogRawBytes emits hex/ASCII dumps of IPP packets
// at debug level for protocol troubleshooting.
package logging
