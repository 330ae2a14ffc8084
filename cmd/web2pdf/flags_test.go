package main

import (
	"errors"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"--url", "https://example.com", "--output", "out.pdf"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.url != "https://example.com" {
		t.Errorf("url = %q", flags.url)
	}
	if flags.output != "out.pdf" {
		t.Errorf("output = %q", flags.output)
	}
	if flags.width != 414 || flags.height != 896 {
		t.Errorf("viewport = %dx%d, want 414x896", flags.width, flags.height)
	}
	if flags.selector != ".rich_media_content" {
		t.Errorf("selector = %q", flags.selector)
	}
	if flags.navTimeout != 60*time.Second {
		t.Errorf("navTimeout = %v, want 60s", flags.navTimeout)
	}
	if flags.imageTimeout != 30*time.Second {
		t.Errorf("imageTimeout = %v, want 30s", flags.imageTimeout)
	}
	if flags.settleScroll != 2*time.Second || flags.settleImages != 5*time.Second || flags.settleFinal != 5*time.Second {
		t.Errorf("settle = %v/%v/%v, want 2s/5s/5s",
			flags.settleScroll, flags.settleImages, flags.settleFinal)
	}
	if flags.pageSize != "a4" || flags.orientation != "portrait" || flags.margin != 20 {
		t.Errorf("page = %s/%s/%v, want a4/portrait/20", flags.pageSize, flags.orientation, flags.margin)
	}
	if flags.quiet || flags.verbose || flags.version {
		t.Error("boolean flags set by default")
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{
		"-u", "https://example.com",
		"-o", "a.pdf",
		"--width", "375",
		"--height", "812",
		"-s", ".post",
		"-t", "90s",
		"--wait-images", "45s",
		"--settle-scroll", "1s",
		"-p", "letter",
		"--orientation", "landscape",
		"--margin", "32",
		"--user-agent", "bot/1.0",
		"-c", "wechat",
		"-q",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.width != 375 || flags.height != 812 {
		t.Errorf("viewport = %dx%d", flags.width, flags.height)
	}
	if flags.selector != ".post" {
		t.Errorf("selector = %q", flags.selector)
	}
	if flags.navTimeout != 90*time.Second || flags.imageTimeout != 45*time.Second {
		t.Errorf("timeouts = %v/%v", flags.navTimeout, flags.imageTimeout)
	}
	if flags.pageSize != "letter" || flags.orientation != "landscape" || flags.margin != 32 {
		t.Errorf("page = %s/%s/%v", flags.pageSize, flags.orientation, flags.margin)
	}
	if flags.userAgent != "bot/1.0" {
		t.Errorf("userAgent = %q", flags.userAgent)
	}
	if flags.config != "wechat" {
		t.Errorf("config = %q", flags.config)
	}
	if !flags.quiet {
		t.Error("quiet not set")
	}

	if !flags.changed("width") {
		t.Error("changed(width) = false after explicit set")
	}
	if flags.changed("settle-final") {
		t.Error("changed(settle-final) = true without explicit set")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "bad duration", args: []string{"--timeout", "soon"}},
		{name: "bad int", args: []string{"--width", "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseFlags(tt.args); err == nil {
				t.Error("parseFlags() succeeded, want error")
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(--help) error = %v, want flag.ErrHelp", err)
	}
}
