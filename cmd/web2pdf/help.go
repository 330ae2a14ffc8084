package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf --url <url> --output <file.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture a webpage as PDF, forcing lazy-loaded images to resolve first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required:")
	fmt.Fprintln(w, "  -u, --url <url>           Target webpage URL")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Viewport:")
	fmt.Fprintln(w, "      --width <n>           Viewport width (default 414, mobile view)")
	fmt.Fprintln(w, "      --height <n>          Viewport height (default 896)")
	fmt.Fprintln(w, "      --user-agent <s>      User-agent override (default: iPhone)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -s, --selector <css>      Content selector (default .rich_media_content)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Navigation and export timeout (default 60s)")
	fmt.Fprintln(w, "      --wait-images <dur>   Image readiness wait bound (default 30s)")
	fmt.Fprintln(w, "      --settle-scroll <dur> Pause after lazy-load scroll (default 2s)")
	fmt.Fprintln(w, "      --settle-images <dur> Pause after deferred-image pass (default 5s)")
	fmt.Fprintln(w, "      --settle-final <dur>  Pause before export (default 5s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal (default a4)")
	fmt.Fprintln(w, "      --orientation <s>     portrait or landscape (default portrait)")
	fmt.Fprintln(w, "      --margin <px>         Margin in pixels, all sides (default 20)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>       Capture profile name or YAML path")
	fmt.Fprintln(w, "  -q, --quiet               Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose             Verbose diagnostics to stderr")
	fmt.Fprintln(w, "      --version             Show version and exit")
}
