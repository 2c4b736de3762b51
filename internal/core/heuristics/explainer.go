// Package heuristics explains a phishing verdict with a fixed set of rules
// over the URL structure. Everything here is pure: no I/O, no shared state.
package heuristics

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	maxURLLength    = 75
	maxHostHyphens  = 4
	maxHostDots     = 3
	findingLongURL  = "**Long URL**: The URL is unusually long (%d characters). Phishers use long URLs to hide the real domain."
	findingAtSymbol = "**Presence of '@' Symbol**: The '@' symbol is often used to embed credentials or confuse the browser about the true destination."
	findingComplex  = "**Complex Subdomains**: The domain structure is overly complex or uses many hyphens, a technique to confuse the user."
	findingIPHost   = "**IP Address Used**: Using an explicit IP address instead of a domain name is highly suspicious for legitimate sites."
	findingKeyword  = "**Suspicious Path Keyword**: The URL path contains '%s', a common tactic used by phishing sites to trick victims."
)

// Checked in order; only the first hit is reported.
var suspiciousKeywords = []string{"login", "verify", "update", "banking", "secure"}

// Rule inspects a URL and returns a finding, or "" when it does not apply.
type Rule func(u Input) string

// Input is the pre-processed URL handed to every rule.
type Input struct {
	Raw     string
	Decoded string
	Parts   SplitURL
}

// Rules returns the rule chain in evaluation order.
func Rules() []Rule {
	return []Rule{lengthRule, atSymbolRule, complexHostRule, ipHostRule, pathKeywordRule}
}

// Explain returns the findings for url in rule order. The result is never nil.
func Explain(url string) []string {
	in := Input{
		Raw:     url,
		Decoded: Unquote(url),
		Parts:   Split(url),
	}

	findings := []string{}
	for _, rule := range Rules() {
		if f := rule(in); f != "" {
			findings = append(findings, f)
		}
	}
	return findings
}

func lengthRule(in Input) string {
	n := CharCount(in.Decoded)
	if n > maxURLLength {
		return fmt.Sprintf(findingLongURL, n)
	}
	return ""
}

func atSymbolRule(in Input) string {
	if strings.Contains(in.Decoded, "@") {
		return findingAtSymbol
	}
	return ""
}

func complexHostRule(in Input) string {
	host := in.Parts.Netloc
	if strings.Count(host, "-") > maxHostHyphens || strings.Count(host, ".") > maxHostDots {
		return findingComplex
	}
	return ""
}

func ipHostRule(in Input) string {
	stripped := strings.NewReplacer(".", "", ":", "").Replace(in.Parts.Netloc)
	if stripped == "" {
		return ""
	}
	for _, r := range stripped {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	return findingIPHost
}

func pathKeywordRule(in Input) string {
	path := strings.ToLower(in.Parts.Path)
	host := strings.ToLower(in.Parts.Netloc)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(path, kw) && !strings.Contains(host, kw) {
			return fmt.Sprintf(findingKeyword, kw)
		}
	}
	return ""
}
