// Package web2pdf captures a rendered webpage as a paginated PDF using
// headless Chrome, forcing lazy-loaded images to resolve before export.
//
// # Quick Start
//
// Create a service, capture a page, and close when done:
//
//	svc := web2pdf.New()
//	defer svc.Close()
//
//	result, err := svc.Capture(ctx, web2pdf.Input{
//	    URL:    "https://mp.weixin.qq.com/s/example",
//	    Output: "article.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %s (%d images)\n", result.OutputPath, result.ImageCount)
//
// # Capture Pipeline
//
// A capture runs these stages in order, each completing before the next:
//
//  1. Open a mobile-emulated page (viewport + user-agent override)
//  2. Navigate and wait for load, network idle, and the content selector
//  3. Scroll through the page to trigger scroll-based lazy loading
//  4. Swap deferred image sources (data-src) and await each image
//  5. Wait for every content image to settle (load, error, or complete)
//  6. Scroll every image into view for a final render pass
//  7. Render the page to PDF and write the output file
//
// Image waiting is deliberately non-fatal: on timeout or evaluation failure
// the capture logs a warning and exports whatever rendered. All other stage
// failures abort the capture after the page is closed.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := web2pdf.New(
//	    web2pdf.WithNavigationTimeout(90 * time.Second),
//	    web2pdf.WithSelector(".article-body"),
//	    web2pdf.WithSettleDelays(web2pdf.SettleDelays{
//	        AfterScroll:  time.Second,
//	        AfterResolve: 3 * time.Second,
//	        AfterReveal:  3 * time.Second,
//	    }),
//	)
//
// Per-capture options (viewport, page geometry) are passed via Input.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package web2pdf
