package main

import (
	"errors"
	"os"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
)

// Exit codes for the web2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful capture
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, web2pdf.ErrBrowserConnect) ||
		errors.Is(err, web2pdf.ErrPageCreate) ||
		errors.Is(err, web2pdf.ErrPageLoad) ||
		errors.Is(err, web2pdf.ErrSelectorNotFound) ||
		errors.Is(err, web2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, web2pdf.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingURL) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidDuration) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, web2pdf.ErrEmptyURL) ||
		errors.Is(err, web2pdf.ErrInvalidURL) ||
		errors.Is(err, web2pdf.ErrEmptyOutput) ||
		errors.Is(err, web2pdf.ErrEmptySelector) ||
		errors.Is(err, web2pdf.ErrInvalidPageSize) ||
		errors.Is(err, web2pdf.ErrInvalidOrientation) ||
		errors.Is(err, web2pdf.ErrInvalidMargin) ||
		errors.Is(err, web2pdf.ErrInvalidViewport) {
		return ExitUsage
	}

	return ExitGeneral
}
