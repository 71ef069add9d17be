// Package filename normalizes video titles into safe download filenames.
// It is shared by the server (response headers) and any client doing the
// final save.
package filename

import (
	"regexp"
	"strings"
)

// DefaultName is used when sanitizing leaves nothing.
const DefaultName = "youtube_audio"

// maxCompatLength caps names for legacy playback devices.
const maxCompatLength = 50

var (
	standardDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s_-]+`)
	compatDisallowed   = regexp.MustCompile(`[^a-zA-Z0-9\s_]+`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	underscoreRun      = regexp.MustCompile(`_{2,}`)
)

// Sanitize normalizes raw into a filesystem-safe name, never empty. Standard
// mode keeps letters, digits, underscores and hyphens, with whitespace runs
// collapsed to a single underscore. Compatibility mode additionally drops
// hyphens, collapses underscore runs and caps the result at 50 characters,
// so the output always matches [A-Za-z0-9_]{1,50}.
func Sanitize(raw string, compatMode bool) string {
	var cleaned string
	if compatMode {
		cleaned = compatDisallowed.ReplaceAllString(raw, "")
	} else {
		cleaned = standardDisallowed.ReplaceAllString(raw, "")
	}
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")
	if compatMode {
		cleaned = underscoreRun.ReplaceAllString(cleaned, "_")
	}
	cleaned = strings.Trim(cleaned, "_")
	if compatMode && len(cleaned) > maxCompatLength {
		cleaned = strings.Trim(cleaned[:maxCompatLength], "_")
	}
	if cleaned == "" {
		return DefaultName
	}
	return cleaned
}
