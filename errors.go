package web2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyURL         = errors.New("target URL cannot be empty")
	ErrInvalidURL       = errors.New("target URL must use http or https")
	ErrEmptyOutput      = errors.New("output path cannot be empty")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrSelectorNotFound = errors.New("content selector not found")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrWritePDF         = errors.New("failed to write PDF file")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Viewport validation errors.
	ErrInvalidViewport = errors.New("invalid viewport dimensions")

	// Selector validation errors.
	ErrEmptySelector = errors.New("content selector cannot be empty")
)
