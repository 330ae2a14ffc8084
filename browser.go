package web2pdf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// rodSession implements browserSession using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodSession struct {
	cfg     serviceConfig
	browser *rod.Browser
}

// newRodSession creates a session; the browser launches lazily on first use.
func newRodSession(cfg serviceConfig) *rodSession {
	return &rodSession{cfg: cfg}
}

// ensureBrowser lazily launches and connects to the browser.
func (s *rodSession) ensureBrowser() error {
	if s.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	s.browser = rod.New().ControlURL(u)
	if err := s.browser.Connect(); err != nil {
		s.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources. Safe to call more than once.
func (s *rodSession) Close() error {
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		return err
	}
	return nil
}

// OpenPage creates a blank page with mobile emulation applied: viewport
// metrics override plus user-agent override.
func (s *rodSession) OpenPage(ctx context.Context, vp Viewport, userAgent string) (pageDriver, error) {
	// Check context before launching anything
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            true,
	}); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	if userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: userAgent,
		}); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("%w: setting user agent: %v", ErrPageCreate, err)
		}
	}

	return &rodPage{page: page, cfg: s.cfg}, nil
}

// rodPage implements pageDriver on a rod page.
type rodPage struct {
	page *rod.Page
	cfg  serviceConfig
}

// Close closes the underlying browser page.
func (p *rodPage) Close() error {
	return p.page.Close()
}

// Navigate loads the URL, waits for the load event, then for a quiet
// network window. A page that never goes idle is not fatal: load already
// succeeded and long-polling pages would otherwise never export.
func (p *rodPage) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx).Timeout(p.cfg.navigationTimeout)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	wait := page.WaitRequestIdle(p.cfg.idleWindow, nil, nil, nil)
	wait()
	return nil
}

// WaitContent blocks until the content selector matches an element.
func (p *rodPage) WaitContent(ctx context.Context, selector string) error {
	page := p.page.Context(ctx).Timeout(p.cfg.selectorTimeout)
	if _, err := page.Element(selector); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrSelectorNotFound, selector, err)
	}
	return nil
}

// TriggerLazyLoad runs the scroll-through script to completion.
// Page.Eval awaits the returned promise.
func (p *rodPage) TriggerLazyLoad(ctx context.Context) error {
	page := p.page.Context(ctx).Timeout(p.cfg.navigationTimeout)
	if _, err := page.Eval(jsScrollThrough); err != nil {
		return fmt.Errorf("%w: scroll pass: %v", ErrPageLoad, err)
	}
	return nil
}

// ResolveDeferredImages runs the forced-reload pass over content images.
func (p *rodPage) ResolveDeferredImages(ctx context.Context, selector string) error {
	page := p.page.Context(ctx).Timeout(p.cfg.imageTimeout)
	if _, err := page.Eval(jsResolveDeferred, selector); err != nil {
		return fmt.Errorf("%w: deferred image pass: %v", ErrPageLoad, err)
	}
	return nil
}

// CountImages returns the number of images under the selector.
func (p *rodPage) CountImages(ctx context.Context, selector string) (int, error) {
	obj, err := p.page.Context(ctx).Eval(jsCountImages, selector)
	if err != nil {
		return 0, err
	}
	return obj.Value.Int(), nil
}

// AwaitImages blocks until every content image settled, bounded by timeout.
// The error is returned unwrapped so callers can detect deadline expiry.
func (p *rodPage) AwaitImages(ctx context.Context, selector string, timeout time.Duration) error {
	page := p.page.Context(ctx).Timeout(timeout)
	_, err := page.Eval(jsAwaitImages, selector)
	return err
}

// ImageStatuses reports per-image diagnostics for the dump.
func (p *rodPage) ImageStatuses(ctx context.Context, selector string) ([]ImageStatus, error) {
	obj, err := p.page.Context(ctx).Eval(jsImageStatuses, selector)
	if err != nil {
		return nil, err
	}

	items := obj.Value.Arr()
	statuses := make([]ImageStatus, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, ImageStatus{
			Src:           item.Get("src").Str(),
			DataSrc:       item.Get("dataSrc").Str(),
			Complete:      item.Get("complete").Bool(),
			NaturalWidth:  item.Get("naturalWidth").Int(),
			NaturalHeight: item.Get("naturalHeight").Int(),
			OffsetTop:     item.Get("offsetTop").Int(),
		})
	}
	return statuses, nil
}

// RevealImages scrolls every content image into the viewport.
func (p *rodPage) RevealImages(ctx context.Context, selector string) error {
	if _, err := p.page.Context(ctx).Eval(jsRevealImages, selector); err != nil {
		return fmt.Errorf("%w: revealing images: %v", ErrPageLoad, err)
	}
	return nil
}

// PDF renders the page with the given settings and returns the bytes.
func (p *rodPage) PDF(ctx context.Context, settings *PageSettings) ([]byte, error) {
	page := p.page.Context(ctx).Timeout(p.cfg.navigationTimeout)
	return renderPDF(page, settings)
}
