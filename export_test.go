package web2pdf

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const floatTolerance = 1e-4

func TestBuildPrintRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		settings      *PageSettings
		wantWidth     float64
		wantHeight    float64
		wantMargin    float64
		wantLandscape bool
	}{
		{
			name:       "nil settings use A4 portrait 20px",
			settings:   nil,
			wantWidth:  8.27,
			wantHeight: 11.7,
			wantMargin: 20.0 / 96.0,
		},
		{
			name:       "a4 portrait 20px margins",
			settings:   &PageSettings{Size: "a4", Orientation: "portrait", MarginPx: 20},
			wantWidth:  8.27,
			wantHeight: 11.7,
			wantMargin: 20.0 / 96.0,
		},
		{
			name:          "letter landscape",
			settings:      &PageSettings{Size: "letter", Orientation: "landscape", MarginPx: 48},
			wantWidth:     8.5,
			wantHeight:    11,
			wantMargin:    0.5,
			wantLandscape: true,
		},
		{
			name:       "legal zero margin",
			settings:   &PageSettings{Size: "legal", Orientation: "portrait", MarginPx: 0},
			wantWidth:  8.5,
			wantHeight: 14,
			wantMargin: 0,
		},
		{
			name:       "case insensitive size",
			settings:   &PageSettings{Size: "Letter", Orientation: "PORTRAIT", MarginPx: 20},
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 20.0 / 96.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := buildPrintRequest(tt.settings)

			if !req.PrintBackground {
				t.Error("PrintBackground = false, want true")
			}
			if req.Landscape != tt.wantLandscape {
				t.Errorf("Landscape = %v, want %v", req.Landscape, tt.wantLandscape)
			}
			if got := *req.PaperWidth; math.Abs(got-tt.wantWidth) > floatTolerance {
				t.Errorf("PaperWidth = %v, want %v", got, tt.wantWidth)
			}
			if got := *req.PaperHeight; math.Abs(got-tt.wantHeight) > floatTolerance {
				t.Errorf("PaperHeight = %v, want %v", got, tt.wantHeight)
			}
			for side, p := range map[string]*float64{
				"top":    req.MarginTop,
				"bottom": req.MarginBottom,
				"left":   req.MarginLeft,
				"right":  req.MarginRight,
			} {
				if math.Abs(*p-tt.wantMargin) > floatTolerance {
					t.Errorf("Margin%s = %v, want %v", side, *p, tt.wantMargin)
				}
			}
		})
	}
}

func TestPixelsToInches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		px   float64
		want float64
	}{
		{0, 0},
		{96, 1},
		{20, 0.2083},
		{48, 0.5},
	}

	for _, tt := range tests {
		if got := pixelsToInches(tt.px); math.Abs(got-tt.want) > floatTolerance {
			t.Errorf("pixelsToInches(%v) = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestWritePDFFile(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "out.pdf")
		if err := writePDFFile(path, []byte("%PDF-1.4")); err != nil {
			t.Fatalf("writePDFFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(data) != "%PDF-1.4" {
			t.Errorf("content = %q, want %%PDF-1.4", data)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.pdf")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := writePDFFile(path, []byte("new")); err != nil {
			t.Fatalf("writePDFFile() error = %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want new", data)
		}
	})

	t.Run("wraps write failures", func(t *testing.T) {
		t.Parallel()

		// Writing into a path whose parent is a file must fail.
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := writePDFFile(filepath.Join(blocker, "out.pdf"), []byte("%PDF"))
		if !errors.Is(err, ErrWritePDF) {
			t.Errorf("writePDFFile() error = %v, want ErrWritePDF", err)
		}
	})
}
