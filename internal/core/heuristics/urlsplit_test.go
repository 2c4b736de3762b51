package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		raw  string
		want SplitURL
	}{
		{
			raw:  "HTTP://User@Host:80/a/b;p?q=1#f",
			want: SplitURL{Scheme: "http", Netloc: "User@Host:80", Path: "/a/b", Params: "p", Query: "q=1", Fragment: "f"},
		},
		{
			raw:  "https://example.com",
			want: SplitURL{Scheme: "https", Netloc: "example.com"},
		},
		{
			raw:  "example.com/login",
			want: SplitURL{Path: "example.com/login"},
		},
		{
			raw:  "mailto:someone@example.com",
			want: SplitURL{Scheme: "mailto", Path: "someone@example.com"},
		},
		{
			raw:  "1http://x",
			want: SplitURL{Path: "1http://x"},
		},
		{
			raw:  "  \thttps://exa\nmple.com/p",
			want: SplitURL{Scheme: "https", Netloc: "example.com", Path: "/p"},
		},
		{
			raw:  "//cdn.example.com/lib.js?v=2",
			want: SplitURL{Netloc: "cdn.example.com", Path: "/lib.js", Query: "v=2"},
		},
		{
			raw:  "https://example.com/a;x/b;y;z",
			want: SplitURL{Scheme: "https", Netloc: "example.com", Path: "/a;x/b", Params: "y;z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.raw))
		})
	}
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "plain", Unquote("plain"))
	assert.Equal(t, "a@b c", Unquote("a%40b%20c"))
	assert.Equal(t, "é", Unquote("%C3%A9"))
	assert.Equal(t, "%zz%4", Unquote("%zz%4"))
	assert.Equal(t, "100%", Unquote("100%"))
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"multi-byte", "é€", 2},
		{"truncated three-byte", "\xe2\x82", 1},
		{"truncated four-byte", "\xf0\x9f\x98", 1},
		{"truncated then ascii", "\xe2\x82a", 2},
		{"lone continuation bytes", "\x80\x80", 2},
		{"invalid lead bytes", "\xff\xfe", 2},
		{"overlong lead", "\xc0\xaf", 2},
		{"surrogate", "\xed\xa0\x80", 3},
		{"bad second byte after E0", "\xe0\x80", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CharCount(tt.in))
		})
	}
}
