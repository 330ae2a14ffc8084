package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "browser connect", err: web2pdf.ErrBrowserConnect, want: ExitBrowser},
		{name: "page load", err: web2pdf.ErrPageLoad, want: ExitBrowser},
		{name: "selector not found", err: web2pdf.ErrSelectorNotFound, want: ExitBrowser},
		{name: "pdf generation", err: web2pdf.ErrPDFGeneration, want: ExitBrowser},
		{name: "write pdf", err: web2pdf.ErrWritePDF, want: ExitIO},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "missing url", err: ErrMissingURL, want: ExitUsage},
		{name: "missing output", err: ErrMissingOutput, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "invalid duration", err: config.ErrInvalidDuration, want: ExitUsage},
		{name: "invalid page size", err: web2pdf.ErrInvalidPageSize, want: ExitUsage},
		{name: "invalid viewport", err: web2pdf.ErrInvalidViewport, want: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("capturing article: %w", web2pdf.ErrPageLoad)
	if got := exitCodeFor(wrapped); got != ExitBrowser {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitBrowser)
	}
}
