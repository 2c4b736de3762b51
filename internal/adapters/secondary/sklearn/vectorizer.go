package sklearn

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"phishing-url-service/internal/core/domain"
)

const defaultTokenPattern = `[A-Za-z]+`

type vectorizerSpec struct {
	Type         string         `json:"type"`
	Lowercase    *bool          `json:"lowercase"`
	TokenPattern string         `json:"token_pattern"`
	NgramRange   [2]int         `json:"ngram_range"`
	Binary       bool           `json:"binary"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Norm         *string        `json:"norm"`
	SublinearTF  bool           `json:"sublinear_tf"`
}

// textVectorizer implements CountVectorizer and TfidfVectorizer transforms
// over word n-grams.
type textVectorizer struct {
	typ        string
	lowercase  bool
	token      *regexp.Regexp
	minN, maxN int
	binary     bool
	vocabulary map[string]int
	idf        []float64
	norm       string
	sublinear  bool
}

func newVectorizer(spec vectorizerSpec) (*textVectorizer, error) {
	if len(spec.Vocabulary) == 0 {
		return nil, errors.New("empty vocabulary")
	}

	pattern := spec.TokenPattern
	if pattern == "" {
		pattern = defaultTokenPattern
	}
	// RE2 has no unicode flag; \w is ASCII-only here.
	pattern = strings.TrimPrefix(pattern, "(?u)")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("token pattern: %w", err)
	}

	minN, maxN := spec.NgramRange[0], spec.NgramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("invalid ngram_range [%d, %d]", minN, maxN)
	}

	dim := len(spec.Vocabulary)
	seen := make([]bool, dim)
	for term, idx := range spec.Vocabulary {
		if idx < 0 || idx >= dim || seen[idx] {
			return nil, fmt.Errorf("vocabulary index %d for %q out of range or duplicated", idx, term)
		}
		seen[idx] = true
	}

	if spec.IDF != nil && len(spec.IDF) != dim {
		return nil, fmt.Errorf("idf has %d entries, vocabulary has %d", len(spec.IDF), dim)
	}

	norm := "l2"
	if spec.Norm != nil {
		norm = *spec.Norm
	}
	if spec.Type == "CountVectorizer" {
		norm = ""
	}
	switch norm {
	case "", "l1", "l2":
	default:
		return nil, fmt.Errorf("unsupported norm %q", norm)
	}

	lowercase := true
	if spec.Lowercase != nil {
		lowercase = *spec.Lowercase
	}

	return &textVectorizer{
		typ:        spec.Type,
		lowercase:  lowercase,
		token:      re,
		minN:       minN,
		maxN:       maxN,
		binary:     spec.Binary,
		vocabulary: spec.Vocabulary,
		idf:        spec.IDF,
		norm:       norm,
		sublinear:  spec.SublinearTF,
	}, nil
}

func (v *textVectorizer) Type() string {
	return v.typ
}

func (v *textVectorizer) Dim() int {
	return len(v.vocabulary)
}

func (v *textVectorizer) Transform(url string) (domain.FeatureVector, error) {
	text := url
	if v.lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, term := range v.ngrams(v.token.FindAllString(text, -1)) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	fv := domain.FeatureVector{
		Dim:     v.Dim(),
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		fv.Indices = append(fv.Indices, idx)
	}
	sort.Ints(fv.Indices)

	for _, idx := range fv.Indices {
		tf := counts[idx]
		if v.binary {
			tf = 1
		}
		if v.sublinear {
			tf = 1 + math.Log(tf)
		}
		if v.idf != nil {
			tf *= v.idf[idx]
		}
		fv.Values = append(fv.Values, tf)
	}

	normalize(fv.Values, v.norm)
	return fv, nil
}

func (v *textVectorizer) ngrams(tokens []string) []string {
	if v.minN == 1 && v.maxN == 1 {
		return tokens
	}
	var out []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case "l1":
		for _, x := range values {
			total += math.Abs(x)
		}
	case "l2":
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
