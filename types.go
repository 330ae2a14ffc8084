package web2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in CSS pixels (96 per inch).
const (
	MinMarginPx     = 0.0
	MaxMarginPx     = 288.0 // 3 inches
	DefaultMarginPx = 20.0
)

// Viewport bounds in CSS pixels.
const (
	MinViewportDim = 1
	MaxViewportDim = 10000
)

// Default mobile emulation matches an iPhone-class device; WeChat article
// pages serve their mobile layout for this profile.
const (
	DefaultViewportWidth  = 414
	DefaultViewportHeight = 896

	defaultUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 13_2_3 like Mac OS X) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/13.0.3 Mobile/15E148 Safari/604.1"
)

// DefaultSelector scopes image handling to the WeChat article body.
const DefaultSelector = ".rich_media_content"

// Default timeouts for capture stages.
const (
	defaultNavigationTimeout = 60 * time.Second
	defaultSelectorTimeout   = 10 * time.Second
	defaultImageTimeout      = 30 * time.Second

	// Quiet period with no in-flight requests that counts as network idle.
	defaultIdleWindow = 500 * time.Millisecond
)

// Input holds per-capture parameters.
type Input struct {
	URL      string        // Target page URL (required)
	Output   string        // Destination PDF path (required)
	Viewport *Viewport     // Emulated viewport (nil = 414x896 mobile)
	Page     *PageSettings // PDF page geometry (nil = A4 portrait, 20px margins)
	Selector string        // Content selector override ("" = service default)
}

// Result holds the outcome of a capture.
type Result struct {
	OutputPath string // Path the PDF was written to
	ImageCount int    // Images found under the content selector (0 on waiter failure)
}

// Viewport configures the emulated browser viewport.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns the mobile viewport used when Input.Viewport is nil.
func DefaultViewport() *Viewport {
	return &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
}

// Validate checks that viewport dimensions are sane.
// Returns nil if v is nil (nil means use defaults).
func (v *Viewport) Validate() error {
	if v == nil {
		return nil
	}
	if v.Width < MinViewportDim || v.Width > MaxViewportDim {
		return fmt.Errorf("%w: width %d", ErrInvalidViewport, v.Width)
	}
	if v.Height < MinViewportDim || v.Height > MaxViewportDim {
		return fmt.Errorf("%w: height %d", ErrInvalidViewport, v.Height)
	}
	return nil
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	MarginPx    float64 // CSS pixels, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		MarginPx:    DefaultMarginPx,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.MarginPx < MinMarginPx || p.MarginPx > MaxMarginPx {
		return fmt.Errorf("%w: %.1fpx (must be between %.0f and %.0f)",
			ErrInvalidMargin, p.MarginPx, MinMarginPx, MaxMarginPx)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// SettleDelays are fixed pauses between capture stages that give the page
// time to finish rendering work the browser exposes no completion signal for.
type SettleDelays struct {
	AfterScroll  time.Duration // After the lazy-load scroll pass
	AfterResolve time.Duration // After the deferred-source resolve pass
	AfterReveal  time.Duration // After scrolling images into view
}

// DefaultSettleDelays returns the stock delays. The values are inherited
// from field use against WeChat article pages; shorter delays risk images
// painting after the PDF snapshot.
func DefaultSettleDelays() SettleDelays {
	return SettleDelays{
		AfterScroll:  2 * time.Second,
		AfterResolve: 5 * time.Second,
		AfterReveal:  5 * time.Second,
	}
}

// ImageStatus describes one image under the content selector at dump time.
// Used only for diagnostics, never retained.
type ImageStatus struct {
	Src           string // Current src attribute
	DataSrc       string // Deferred-source attribute (data-src), if any
	Complete      bool   // Browser-reported load completion
	NaturalWidth  int    // Decoded pixel width (0 until loaded)
	NaturalHeight int    // Decoded pixel height
	OffsetTop     int    // Vertical offset from document top, in pixels
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	navigationTimeout time.Duration
	selectorTimeout   time.Duration
	imageTimeout      time.Duration
	idleWindow        time.Duration
	settle            SettleDelays
	selector          string
	userAgent         string
	logf              func(format string, args ...interface{})
}

// defaultServiceConfig returns the stock configuration.
func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		navigationTimeout: defaultNavigationTimeout,
		selectorTimeout:   defaultSelectorTimeout,
		imageTimeout:      defaultImageTimeout,
		idleWindow:        defaultIdleWindow,
		settle:            DefaultSettleDelays(),
		selector:          DefaultSelector,
		userAgent:         defaultUserAgent,
		logf:              func(string, ...interface{}) {},
	}
}

// WithNavigationTimeout sets the navigation and export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithNavigationTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("web2pdf: WithNavigationTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.navigationTimeout = d
	}
}

// WithSelectorTimeout sets how long to wait for the content selector.
// Panics if d <= 0.
func WithSelectorTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("web2pdf: WithSelectorTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.selectorTimeout = d
	}
}

// WithImageTimeout bounds the image readiness wait.
// Panics if d <= 0.
func WithImageTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("web2pdf: WithImageTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.imageTimeout = d
	}
}

// WithSettleDelays overrides the inter-stage settle delays.
// Zero fields disable the corresponding pause.
func WithSettleDelays(d SettleDelays) Option {
	return func(s *Service) {
		s.cfg.settle = d
	}
}

// WithSelector sets the default content selector for captures that do not
// specify one in Input.
func WithSelector(selector string) Option {
	return func(s *Service) {
		s.cfg.selector = selector
	}
}

// WithUserAgent overrides the emulated user-agent string.
func WithUserAgent(ua string) Option {
	return func(s *Service) {
		s.cfg.userAgent = ua
	}
}

// WithLogf sets the progress/diagnostic log function.
// The default discards all output.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(s *Service) {
		if logf != nil {
			s.cfg.logf = logf
		}
	}
}
