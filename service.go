package web2pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// browserSession abstracts browser lifecycle to enable testing without Chrome.
type browserSession interface {
	OpenPage(ctx context.Context, vp Viewport, userAgent string) (pageDriver, error)
	Close() error
}

// pageDriver abstracts the per-page operations the capture pipeline needs.
// The production implementation drives a rod page; tests substitute fakes.
type pageDriver interface {
	// Navigate loads the URL and waits for load + network idle.
	Navigate(ctx context.Context, url string) error
	// WaitContent blocks until the content selector appears.
	WaitContent(ctx context.Context, selector string) error
	// TriggerLazyLoad scrolls through the page and back to top.
	TriggerLazyLoad(ctx context.Context) error
	// ResolveDeferredImages swaps data-src into src and awaits each image.
	ResolveDeferredImages(ctx context.Context, selector string) error
	// CountImages returns the number of images under the selector.
	CountImages(ctx context.Context, selector string) (int, error)
	// AwaitImages blocks until every image settled (load, error, or already
	// complete), bounded by timeout.
	AwaitImages(ctx context.Context, selector string, timeout time.Duration) error
	// ImageStatuses reports per-image diagnostics.
	ImageStatuses(ctx context.Context, selector string) ([]ImageStatus, error)
	// RevealImages scrolls every image into the viewport.
	RevealImages(ctx context.Context, selector string) error
	// PDF renders the page with the given settings.
	PDF(ctx context.Context, settings *PageSettings) ([]byte, error)
	Close() error
}

// Compile-time interface implementation checks.
var (
	_ browserSession = (*rodSession)(nil)
	_ pageDriver     = (*rodPage)(nil)
)

// Service orchestrates the webpage-to-PDF capture pipeline.
// Create with New(), use Capture() per page, and Close() when done.
// A Service owns one browser instance; captures run sequentially.
type Service struct {
	cfg     serviceConfig
	session browserSession
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithNavigationTimeout, WithSelector).
func New(opts ...Option) *Service {
	s := &Service{cfg: defaultServiceConfig()}

	for _, opt := range opts {
		opt(s)
	}

	// Create browser session if not injected (e.g., by tests)
	if s.session == nil {
		s.session = newRodSession(s.cfg)
	}

	return s
}

// Close releases the browser. Safe to call more than once.
func (s *Service) Close() error {
	return s.session.Close()
}

// Capture runs the full pipeline for one page and writes the PDF to
// input.Output. The context cancels any stage, including settle delays.
// The page is closed before Capture returns, success or not.
func (s *Service) Capture(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	vp := input.Viewport
	if vp == nil {
		vp = DefaultViewport()
	}
	settings := input.Page
	if settings == nil {
		settings = DefaultPageSettings()
	}
	selector := input.Selector
	if selector == "" {
		selector = s.cfg.selector
	}

	page, err := s.session.OpenPage(ctx, *vp, s.cfg.userAgent)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	count, err := s.capturePage(ctx, page, input.URL, selector)
	if err != nil {
		return nil, err
	}

	s.cfg.logf("Generating PDF...")
	pdf, err := page.PDF(ctx, settings)
	if err != nil {
		return nil, err
	}

	if err := writePDFFile(input.Output, pdf); err != nil {
		return nil, err
	}

	s.cfg.logf("Successfully created PDF: %s", input.Output)
	return &Result{OutputPath: input.Output, ImageCount: count}, nil
}

// capturePage drives the page through load, lazy-load, and image settling.
// Returns the image count from the readiness wait.
func (s *Service) capturePage(ctx context.Context, page pageDriver, url, selector string) (int, error) {
	s.cfg.logf("Loading page...")
	if err := page.Navigate(ctx, url); err != nil {
		return 0, err
	}

	s.cfg.logf("Waiting for article content...")
	if err := page.WaitContent(ctx, selector); err != nil {
		return 0, err
	}

	s.cfg.logf("Scrolling through page to trigger lazy loading...")
	if err := page.TriggerLazyLoad(ctx); err != nil {
		return 0, err
	}
	if err := settle(ctx, s.cfg.settle.AfterScroll); err != nil {
		return 0, err
	}

	s.cfg.logf("Ensuring all images are loaded...")
	if err := page.ResolveDeferredImages(ctx, selector); err != nil {
		return 0, err
	}
	if err := settle(ctx, s.cfg.settle.AfterResolve); err != nil {
		return 0, err
	}

	// Non-fatal by design: a page with a stuck image still gets exported.
	count := s.waitForImages(ctx, page, selector)

	s.cfg.logf("Performing final image check...")
	s.dumpImages(ctx, page, selector)

	if err := page.RevealImages(ctx, selector); err != nil {
		return 0, err
	}
	if err := settle(ctx, s.cfg.settle.AfterReveal); err != nil {
		return 0, err
	}

	return count, nil
}

// waitForImages counts images under the selector and blocks until every one
// settled or the image timeout elapses. Timeouts and evaluation failures are
// swallowed: the capture proceeds with whatever rendered. Returns the image
// count, or 0 when no images matched or the count itself failed.
func (s *Service) waitForImages(ctx context.Context, page pageDriver, selector string) int {
	count, err := page.CountImages(ctx, selector)
	if err != nil {
		s.cfg.logf("Warning: Error while waiting for images: %v", err)
		return 0
	}
	if count == 0 {
		return 0
	}

	s.cfg.logf("Found %d images, waiting for them to load...", count)
	if err := page.AwaitImages(ctx, selector, s.cfg.imageTimeout); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// The count was already measured; unloaded images are exported as-is.
			s.cfg.logf("Image loading timed out, continuing anyway...")
			return count
		}
		s.cfg.logf("Warning: Error while waiting for images: %v", err)
		return 0
	}

	s.cfg.logf("Image loading completed")
	return count
}

// dumpImages logs per-image diagnostics. Failures only lose the dump.
func (s *Service) dumpImages(ctx context.Context, page pageDriver, selector string) {
	statuses, err := page.ImageStatuses(ctx, selector)
	if err != nil {
		s.cfg.logf("Warning: Error collecting image diagnostics: %v", err)
		return
	}

	s.cfg.logf("Image Debug Information:")
	for i, img := range statuses {
		dataSrc := img.DataSrc
		if dataSrc == "" {
			dataSrc = "None"
		}
		s.cfg.logf("Image %d:", i+1)
		s.cfg.logf("  Complete: %v", img.Complete)
		s.cfg.logf("  Natural Size: %dx%d", img.NaturalWidth, img.NaturalHeight)
		s.cfg.logf("  Position: %dpx from top", img.OffsetTop)
		s.cfg.logf("  Src: %s", img.Src)
		s.cfg.logf("  Data-Src: %s", dataSrc)
	}
}

// validateInput checks per-capture parameters before touching the browser.
func (s *Service) validateInput(input Input) error {
	if input.URL == "" {
		return ErrEmptyURL
	}
	if !strings.HasPrefix(input.URL, "http://") && !strings.HasPrefix(input.URL, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, input.URL)
	}
	if input.Output == "" {
		return ErrEmptyOutput
	}
	if input.Selector == "" && s.cfg.selector == "" {
		return ErrEmptySelector
	}
	if err := input.Viewport.Validate(); err != nil {
		return err
	}
	return input.Page.Validate()
}

// settle pauses for d, honoring context cancellation.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
