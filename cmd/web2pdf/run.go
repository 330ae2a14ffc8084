package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
)

// Sentinel errors for CLI validation.
var (
	ErrMissingURL    = errors.New("--url is required")
	ErrMissingOutput = errors.New("--output is required")
)

// capturer is the interface for the capture service.
type capturer interface {
	Capture(ctx context.Context, input web2pdf.Input) (*web2pdf.Result, error)
	Close() error
}

// run loads the optional config profile, builds the service, and captures.
func run(ctx context.Context, flags *captureFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	input, err := buildInput(flags, cfg)
	if err != nil {
		return err
	}

	opts, err := buildOptions(flags, cfg, env)
	if err != nil {
		return err
	}

	svc := web2pdf.New(opts...)
	defer func() { _ = svc.Close() }()

	return capture(ctx, svc, input, env)
}

// capture runs one capture and prints the result.
func capture(ctx context.Context, svc capturer, input web2pdf.Input, env *Environment) error {
	result, err := svc.Capture(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Successfully created PDF: %s\n", result.OutputPath)
	return nil
}

// buildInput resolves per-capture parameters from flags and config.
// Precedence: explicit flag > config field > default.
func buildInput(flags *captureFlags, cfg *config.Config) (web2pdf.Input, error) {
	if flags.url == "" {
		return web2pdf.Input{}, ErrMissingURL
	}
	if flags.output == "" {
		return web2pdf.Input{}, ErrMissingOutput
	}

	output := flags.output
	if cfg.Output.DefaultDir != "" && !filepath.IsAbs(output) {
		output = filepath.Join(cfg.Output.DefaultDir, output)
	}

	width := flags.width
	if !flags.changed("width") && cfg.Viewport.Width > 0 {
		width = cfg.Viewport.Width
	}
	height := flags.height
	if !flags.changed("height") && cfg.Viewport.Height > 0 {
		height = cfg.Viewport.Height
	}

	size := flags.pageSize
	if !flags.changed("page-size") && cfg.Page.Size != "" {
		size = cfg.Page.Size
	}
	orientation := flags.orientation
	if !flags.changed("orientation") && cfg.Page.Orientation != "" {
		orientation = cfg.Page.Orientation
	}
	margin := flags.margin
	if !flags.changed("margin") && cfg.Page.MarginPx != nil {
		margin = *cfg.Page.MarginPx
	}

	return web2pdf.Input{
		URL:      flags.url,
		Output:   output,
		Viewport: &web2pdf.Viewport{Width: width, Height: height},
		Page: &web2pdf.PageSettings{
			Size:        size,
			Orientation: orientation,
			MarginPx:    margin,
		},
	}, nil
}

// buildOptions resolves service options from flags and config.
func buildOptions(flags *captureFlags, cfg *config.Config, env *Environment) ([]web2pdf.Option, error) {
	navTimeout, err := resolveDuration(flags.changed("timeout"), flags.navTimeout, cfg.Capture.NavTimeout)
	if err != nil {
		return nil, err
	}
	imageTimeout, err := resolveDuration(flags.changed("wait-images"), flags.imageTimeout, cfg.Capture.ImageTimeout)
	if err != nil {
		return nil, err
	}
	settleScroll, err := resolveDuration(flags.changed("settle-scroll"), flags.settleScroll, cfg.Capture.SettleScroll)
	if err != nil {
		return nil, err
	}
	settleImages, err := resolveDuration(flags.changed("settle-images"), flags.settleImages, cfg.Capture.SettleImages)
	if err != nil {
		return nil, err
	}
	settleFinal, err := resolveDuration(flags.changed("settle-final"), flags.settleFinal, cfg.Capture.SettleFinal)
	if err != nil {
		return nil, err
	}

	selector := flags.selector
	if !flags.changed("selector") && cfg.Capture.Selector != "" {
		selector = cfg.Capture.Selector
	}

	opts := []web2pdf.Option{
		web2pdf.WithSettleDelays(web2pdf.SettleDelays{
			AfterScroll:  settleScroll,
			AfterResolve: settleImages,
			AfterReveal:  settleFinal,
		}),
		web2pdf.WithSelector(selector),
	}

	// WithNavigationTimeout and WithImageTimeout reject non-positive values;
	// a "0s" config field falls back to the library default instead.
	if navTimeout > 0 {
		opts = append(opts, web2pdf.WithNavigationTimeout(navTimeout))
	}
	if imageTimeout > 0 {
		opts = append(opts, web2pdf.WithImageTimeout(imageTimeout))
	}

	userAgent := flags.userAgent
	if userAgent == "" {
		userAgent = cfg.Viewport.UserAgent
	}
	if userAgent != "" {
		opts = append(opts, web2pdf.WithUserAgent(userAgent))
	}

	if !flags.quiet {
		opts = append(opts, web2pdf.WithLogf(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stdout, format+"\n", args...)
		}))
	}

	return opts, nil
}

// resolveDuration applies flag/config precedence for one duration setting.
func resolveDuration(flagSet bool, flagVal time.Duration, cfgVal string) (time.Duration, error) {
	if flagSet || cfgVal == "" {
		return flagVal, nil
	}
	return config.ParseDuration(cfgVal, flagVal)
}
