package heuristics

import (
	"strings"
	"unicode/utf8"
)

// SplitURL holds the components of a URL as split by a generic URL splitter.
// Unlike net/url it never rejects input: a malformed URL still yields
// components, possibly empty.
type SplitURL struct {
	Scheme   string
	Netloc   string
	Path     string
	Params   string
	Query    string
	Fragment string
}

const schemeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-."

// Schemes whose last path segment may carry ";params".
var paramSchemes = map[string]bool{
	"": true, "ftp": true, "hdl": true, "prospero": true, "http": true, "imap": true,
	"https": true, "shttp": true, "rtsp": true, "rtsps": true, "rtspu": true,
	"sip": true, "sips": true, "mms": true, "sftp": true, "tel": true,
}

// Split breaks raw into scheme, network location, path, params, query and
// fragment.
func Split(raw string) SplitURL {
	var u SplitURL

	rest := strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(raw)
	rest = strings.TrimLeftFunc(rest, func(r rune) bool { return r <= ' ' })

	if i := strings.IndexByte(rest, ':'); i > 0 && isASCIILetter(rest[0]) && isScheme(rest[:i]) {
		u.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := len(rest)
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			end = i
		}
		u.Netloc, rest = rest[:end], rest[end:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest, u.Fragment = rest[:i], rest[i+1:]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, u.Query = rest[:i], rest[i+1:]
	}

	u.Path = rest
	if paramSchemes[u.Scheme] && strings.Contains(rest, ";") {
		u.Path, u.Params = splitParams(rest)
	}
	return u
}

func splitParams(path string) (string, string) {
	start := 0
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		start = i
		if strings.IndexByte(path[start:], ';') < 0 {
			return path, ""
		}
	}
	i := strings.IndexByte(path[start:], ';') + start
	return path[:i], path[i+1:]
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(schemeChars, s[i]) < 0 {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Unquote decodes %XX escapes. Escapes that are not two hex digits are kept
// literally; the result may contain invalid UTF-8.
func Unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// CharCount counts the characters of s after a lenient UTF-8 decode: each
// maximal ill-formed subsequence counts as one replacement character.
func CharCount(s string) int {
	n := 0
	for i := 0; i < len(s); n++ {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			size = invalidSpan(s[i:])
		}
		i += size
	}
	return n
}

// invalidSpan returns the length of the ill-formed prefix of s that becomes a
// single replacement character: a lead byte plus the continuation bytes that
// still fit a valid sequence.
func invalidSpan(s string) int {
	lo, hi := byte(0x80), byte(0xBF)
	var need int
	switch b := s[0]; {
	case b >= 0xC2 && b <= 0xDF:
		need = 1
	case b == 0xE0:
		need, lo = 2, 0xA0
	case b == 0xED:
		need, hi = 2, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		need = 2
	case b == 0xF0:
		need, lo = 3, 0x90
	case b == 0xF4:
		need, hi = 3, 0x8F
	case b >= 0xF1 && b <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(s) && s[n] >= lo && s[n] <= hi {
		lo, hi = 0x80, 0xBF
		n++
	}
	return n
}
