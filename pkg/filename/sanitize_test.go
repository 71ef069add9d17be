package filename

import (
	"regexp"
	"strings"
	"testing"
)

var compatShape = regexp.MustCompile(`^[A-Za-z0-9_]{1,50}$`)

func TestSanitizeStandardMode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain title", in: "My Song", want: "My_Song"},
		{name: "keeps hyphens", in: "Lo-Fi Mix", want: "Lo-Fi_Mix"},
		{name: "strips punctuation before collapsing", in: "Official Video! (HD) — 2024", want: "Official_Video_HD_2024"},
		{name: "collapses whitespace runs", in: "a \t b\n\nc", want: "a_b_c"},
		{name: "trims leading and trailing underscores", in: "  spaced  ", want: "spaced"},
		{name: "empty input", in: "", want: "youtube_audio"},
		{name: "only punctuation", in: "!!!", want: "youtube_audio"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in, false)
			if got != tc.want {
				t.Fatalf("Sanitize(%q, false) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeCompatMode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "drops hyphens", in: "Lo-Fi Mix", want: "LoFi_Mix"},
		{name: "official video title", in: "Official Video! (HD) — 2024", want: "Official_Video_HD_2024"},
		{name: "collapses underscore runs", in: "a _ _ b", want: "a_b"},
		{name: "empty input", in: "", want: "youtube_audio"},
		{name: "only punctuation", in: "!!!", want: "youtube_audio"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in, true)
			if got != tc.want {
				t.Fatalf("Sanitize(%q, true) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeCompatModeTruncatesToFifty(t *testing.T) {
	in := strings.Repeat("abcde ", 20) // far over the cap once collapsed
	got := Sanitize(in, true)
	if len(got) > 50 {
		t.Fatalf("length %d, want <= 50 (%q)", len(got), got)
	}
	if !compatShape.MatchString(got) {
		t.Fatalf("compat output %q does not match %s", got, compatShape)
	}
}

func TestSanitizeCompatModeShapeHolds(t *testing.T) {
	inputs := []string{
		"ünïcödé — tïtlé",
		"a-b-c-d",
		"   ",
		"___",
		"song.title.v2 [official] {remaster}",
		strings.Repeat("x", 200),
	}
	for _, in := range inputs {
		got := Sanitize(in, true)
		if !compatShape.MatchString(got) {
			t.Fatalf("Sanitize(%q, true) = %q, does not match %s", in, got, compatShape)
		}
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Official Video! (HD) — 2024",
		"Lo-Fi Mix",
		"  spaced   out  ",
		"!!!",
		strings.Repeat("word ", 30),
	}
	for _, in := range inputs {
		for _, compat := range []bool{false, true} {
			once := Sanitize(in, compat)
			twice := Sanitize(once, compat)
			if once != twice {
				t.Fatalf("Sanitize(%q, %v) not idempotent: %q then %q", in, compat, once, twice)
			}
		}
	}
}
