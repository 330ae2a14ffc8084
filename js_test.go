package web2pdf

// Notes:
// - The in-page scripts are evaluated by Chrome, not here; these tests pin
//   the behavioral hooks each script must carry so a refactor cannot
//   silently drop one (e.g. the error listener that prevents hangs).
// - Full evaluation is covered by the integration tests.

import (
	"strings"
	"testing"
)

func TestJSAwaitImages_SettlesOnErrorToo(t *testing.T) {
	t.Parallel()

	// An errored image must resolve, not reject: a single broken image
	// would otherwise block the capture until the timeout every time.
	for _, hook := range []string{
		"addEventListener('load'",
		"addEventListener('error'",
		"img.complete",
		"Promise.all",
	} {
		if !strings.Contains(jsAwaitImages, hook) {
			t.Errorf("jsAwaitImages missing %q", hook)
		}
	}
	if strings.Contains(jsAwaitImages, "reject") {
		t.Error("jsAwaitImages rejects; errored images must settle instead")
	}
}

func TestJSScrollThrough_BoundedAndReturnsToTop(t *testing.T) {
	t.Parallel()

	for _, hook := range []string{
		"scrollHeight",
		"clearInterval",
		"window.scrollTo(0, 0)",
	} {
		if !strings.Contains(jsScrollThrough, hook) {
			t.Errorf("jsScrollThrough missing %q", hook)
		}
	}
}

func TestJSResolveDeferred_RestoresOriginalOnError(t *testing.T) {
	t.Parallel()

	for _, hook := range []string{
		"img.dataset.src",
		"originalSrc",
		"img.onerror",
	} {
		if !strings.Contains(jsResolveDeferred, hook) {
			t.Errorf("jsResolveDeferred missing %q", hook)
		}
	}
}

func TestJSScripts_ScopeBySelector(t *testing.T) {
	t.Parallel()

	// Every selector-scoped script must build its query from the argument,
	// never from a hard-coded class.
	scoped := map[string]string{
		"jsCountImages":     jsCountImages,
		"jsResolveDeferred": jsResolveDeferred,
		"jsAwaitImages":     jsAwaitImages,
		"jsImageStatuses":   jsImageStatuses,
		"jsRevealImages":    jsRevealImages,
	}
	for name, js := range scoped {
		if !strings.Contains(js, `sel + " img"`) {
			t.Errorf("%s does not query images via the selector argument", name)
		}
		if strings.Contains(js, "rich_media_content") {
			t.Errorf("%s hard-codes the default selector", name)
		}
	}
}

func TestJSImageStatuses_FieldsMatchDecoder(t *testing.T) {
	t.Parallel()

	// Keys must match what rodPage.ImageStatuses decodes.
	for _, key := range []string{
		"src:", "dataSrc:", "complete:", "naturalWidth:", "naturalHeight:", "offsetTop:",
	} {
		if !strings.Contains(jsImageStatuses, key) {
			t.Errorf("jsImageStatuses missing key %q", key)
		}
	}
}
