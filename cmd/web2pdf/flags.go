package main

import (
	"os"
	"time"

	flag "github.com/spf13/pflag"

	web2pdf "github.com/alnah/go-web2pdf"
)

// captureFlags holds all CLI flags for a capture run.
type captureFlags struct {
	url    string
	output string

	width  int
	height int

	selector     string
	navTimeout   time.Duration
	imageTimeout time.Duration

	settleScroll time.Duration
	settleImages time.Duration
	settleFinal  time.Duration

	pageSize    string
	orientation string
	margin      float64

	userAgent string
	config    string

	quiet   bool
	verbose bool
	version bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was set explicitly, which lets
// flags take precedence over config-file values only when the user typed them.
func (f *captureFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// parseFlags parses CLI arguments into captureFlags.
// Flag defaults mirror the library defaults so an unset flag and an absent
// config field resolve to the same behavior.
func parseFlags(args []string) (*captureFlags, error) {
	f := &captureFlags{}
	fs := flag.NewFlagSet("web2pdf", flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(os.Stderr) }

	fs.StringVarP(&f.url, "url", "u", "", "Target webpage URL (required)")
	fs.StringVarP(&f.output, "output", "o", "", "Output PDF file path (required)")

	fs.IntVar(&f.width, "width", web2pdf.DefaultViewportWidth, "Viewport width (mobile view)")
	fs.IntVar(&f.height, "height", web2pdf.DefaultViewportHeight, "Viewport height (mobile view)")

	fs.StringVarP(&f.selector, "selector", "s", web2pdf.DefaultSelector, "Content CSS selector")
	fs.DurationVarP(&f.navTimeout, "timeout", "t", 60*time.Second, "Navigation and export timeout")
	fs.DurationVar(&f.imageTimeout, "wait-images", 30*time.Second, "Image readiness wait bound")

	fs.DurationVar(&f.settleScroll, "settle-scroll", 2*time.Second, "Pause after the lazy-load scroll")
	fs.DurationVar(&f.settleImages, "settle-images", 5*time.Second, "Pause after the deferred-image pass")
	fs.DurationVar(&f.settleFinal, "settle-final", 5*time.Second, "Pause after revealing images")

	fs.StringVarP(&f.pageSize, "page-size", "p", web2pdf.PageSizeA4, "Page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", web2pdf.OrientationPortrait, "Page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", web2pdf.DefaultMarginPx, "Page margin in pixels, all sides")

	fs.StringVar(&f.userAgent, "user-agent", "", "User-agent override (default: iPhone)")
	fs.StringVarP(&f.config, "config", "c", "", "Capture profile name or YAML path")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose diagnostics to stderr")
	fs.BoolVar(&f.version, "version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.fs = fs
	return f, nil
}
