package stringx

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "\u00a0\u2003"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	for _, s := range []string{"x", "  x  ", "\u200b"} {
		if IsBlank(s) {
			t.Errorf("IsBlank(%q) = true", s)
		}
	}
	if got := ValueOrDefault("  ", "fallback"); got != "fallback" {
		t.Errorf("ValueOrDefault(blank) = %q", got)
	}
	if got := ValueOrDefault("v", "fallback"); got != "v" {
		t.Errorf("ValueOrDefault(v) = %q", got)
	}
}

func TestSubstringAfter(t *testing.T) {
	tests := []struct {
		name, s, sep, want string
	}{
		{name: "ascii fold", s: "Hello WORLD: rest", sep: "world: ", want: "rest"},
		{name: "first occurrence", s: "a=b=c", sep: "=", want: "b=c"},
		{name: "missing", s: "abc", sep: "x", want: ""},
		{name: "empty sep", s: "abc", sep: "", want: "abc"},
		{name: "cyrillic", s: "ПРИВЕТ мир", sep: "привет ", want: "мир"},
		{name: "decomposed input", s: "cafe\u0301 au lait", sep: "CAF\u00c9 ", want: "au lait"},
		{name: "sep at end", s: "key:", sep: "KEY:", want: ""},
		{name: "result composed", s: "x=e\u0301", sep: "=", want: "\u00e9"},
		{name: "match splits decomposed input", s: "Cafe\u0301!", sep: "CAF", want: "\u00e9!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SubstringAfter(tc.s, tc.sep); got != tc.want {
				t.Fatalf("SubstringAfter(%q, %q) = %q, want %q", tc.s, tc.sep, got, tc.want)
			}
		})
	}
}

func TestSubstringExact(t *testing.T) {
	if got := SubstringAfterExact("Path=/a/b", "="); got != "/a/b" {
		t.Errorf("SubstringAfterExact = %q", got)
	}
	if got := SubstringAfterExact("Path=/a/b", "PATH="); got != "" {
		t.Errorf("SubstringAfterExact is case sensitive, got %q", got)
	}
	if got := SubstringAfterRune("x→y→z", '→'); got != "y→z" {
		t.Errorf("SubstringAfterRune = %q", got)
	}
	if got := SubstringBefore("name.tar.gz", ".tar"); got != "name" {
		t.Errorf("SubstringBefore = %q", got)
	}
	if got := SubstringBefore("name", "."); got != "" {
		t.Errorf("SubstringBefore missing = %q", got)
	}
	if got := SubstringBeforeRune("k→v", '→'); got != "k" {
		t.Errorf("SubstringBeforeRune = %q", got)
	}
	if got := SubstringAfterRune("kv", '→'); got != "" {
		t.Errorf("SubstringAfterRune missing = %q", got)
	}
}

func TestLimitLength(t *testing.T) {
	tests := []struct {
		s        string
		limit    int
		ellipsis bool
		want     string
	}{
		{s: "hello", limit: 10, want: "hello"},
		{s: "hello", limit: 5, want: "hello"},
		{s: "hello world", limit: 5, want: "hello"},
		{s: "hello world", limit: 8, ellipsis: true, want: "hello..."},
		{s: "hello world", limit: 4, ellipsis: true, want: "hell"},
		{s: "héllo wörld", limit: 7, ellipsis: true, want: "héll..."},
		{s: "日本語のテキスト", limit: 3, want: "日本語"},
		{s: "abc", limit: 0, want: ""},
		{s: "abc", limit: -2, want: ""},
	}
	for _, tc := range tests {
		var got string
		if tc.ellipsis {
			got = LimitLengthEllipsis(tc.s, tc.limit)
		} else {
			got = LimitLength(tc.s, tc.limit)
		}
		if got != tc.want {
			t.Errorf("limit(%q, %d, %v) = %q, want %q", tc.s, tc.limit, tc.ellipsis, got, tc.want)
		}
	}
}

func TestLimitWidth(t *testing.T) {
	if got := LimitWidth("hello world", 8); got != "hello..." {
		t.Errorf("LimitWidth ascii = %q", got)
	}
	wide := "日本語テキスト"
	got := LimitWidth(wide, 7)
	if w := runewidth.StringWidth(got); w > 7 {
		t.Errorf("LimitWidth(%q, 7) = %q with width %d", wide, got, w)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("LimitWidth(%q, 7) = %q, want ellipsis", wide, got)
	}
	if got := LimitWidth("short", 20); got != "short" {
		t.Errorf("LimitWidth fits = %q", got)
	}
	if got := LimitWidth("abcdef", 3); got != "abc" {
		t.Errorf("LimitWidth narrow = %q", got)
	}
}

type failingWriter struct {
	strings.Builder
	failAfter int
}

func (f *failingWriter) WriteString(s string) (int, error) {
	if f.failAfter == 0 {
		return 0, errors.New("disk full")
	}
	f.failAfter--
	return f.Builder.WriteString(s)
}

func TestJoinTo(t *testing.T) {
	var b strings.Builder
	n, err := JoinTo(&b, slices.Values([]string{"a", "bb", "c"}), ", ")
	if err != nil {
		t.Fatalf("JoinTo: %v", err)
	}
	if b.String() != "a, bb, c" || n != len("a, bb, c") {
		t.Fatalf("JoinTo = %q (%d bytes)", b.String(), n)
	}

	b.Reset()
	if _, err := JoinTo(&b, slices.Values([]string(nil)), ","); err != nil || b.Len() != 0 {
		t.Fatalf("JoinTo(empty) = %q, %v", b.String(), err)
	}

	fw := &failingWriter{failAfter: 2}
	n, err = JoinTo(fw, slices.Values([]string{"a", "b", "c"}), "-")
	if err == nil {
		t.Fatal("JoinTo should surface writer errors")
	}
	if n != 2 {
		t.Fatalf("JoinTo wrote %d bytes before failing, want 2", n)
	}
}
