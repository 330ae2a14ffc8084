package web2pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-web2pdf/internal/fileutil"
)

// CSS reference pixel density used by Chrome's print pipeline.
const pixelsPerInch = 96.0

// paperSize holds page dimensions in inches, portrait orientation.
type paperSize struct {
	width  float64
	height float64
}

// paperSizes maps page size names to their dimensions.
var paperSizes = map[string]paperSize{
	PageSizeLetter: {width: 8.5, height: 11},
	PageSizeA4:     {width: 8.27, height: 11.7},
	PageSizeLegal:  {width: 8.5, height: 14},
}

// buildPrintRequest constructs the Chrome print request for the settings.
// Settings must have been validated; unknown sizes fall back to A4.
func buildPrintRequest(settings *PageSettings) *proto.PagePrintToPDF {
	if settings == nil {
		settings = DefaultPageSettings()
	}

	size, ok := paperSizes[strings.ToLower(settings.Size)]
	if !ok {
		size = paperSizes[PageSizeA4]
	}

	margin := pixelsToInches(settings.MarginPx)

	return &proto.PagePrintToPDF{
		Landscape:       strings.ToLower(settings.Orientation) == OrientationLandscape,
		PaperWidth:      floatPtr(size.width),
		PaperHeight:     floatPtr(size.height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// renderPDF invokes Chrome's print-to-PDF on the page and drains the stream.
func renderPDF(page *rod.Page, settings *PageSettings) ([]byte, error) {
	reader, err := page.PDF(buildPrintRequest(settings))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	if len(pdfBuf) == 0 {
		return nil, fmt.Errorf("%w: empty PDF stream", ErrPDFGeneration)
	}

	return pdfBuf, nil
}

// writePDFFile ensures the output directory exists and writes the PDF.
func writePDFFile(outputPath string, data []byte) error {
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	if err := fileutil.EnsureDir(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return nil
}

// pixelsToInches converts CSS pixels to inches at 96 dpi.
func pixelsToInches(px float64) float64 {
	return px / pixelsPerInch
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
