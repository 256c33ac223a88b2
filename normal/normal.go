// Package normal contains string normalization helpers for bibliographic
// fields.
package normal

import (
	"sort"
	"strings"
	"unicode"
)

type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

type Normalizer interface {
	Normalize(string) string
}

type SimpleNormalizer struct{}

func (s *SimpleNormalizer) Normalize(v string) string {
	return strings.ToLower(v)
}

type CollapseWSNormalizer struct{}

func (s *CollapseWSNormalizer) Normalize(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

type LettersOnlyNormalizer struct{}

func (s *LettersOnlyNormalizer) Normalize(v string) string {
	var b strings.Builder
	for _, c := range v {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !unicode.IsSpace(c) {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

var titlePipeline = &Pipeline{
	Normalizer: []Normalizer{
		&SimpleNormalizer{},
		&CollapseWSNormalizer{},
	},
}

// tokenPipeline additionally drops punctuation, so token comparison only
// sees words.
var tokenPipeline = &Pipeline{
	Normalizer: []Normalizer{
		&SimpleNormalizer{},
		&LettersOnlyNormalizer{},
		&CollapseWSNormalizer{},
	},
}

// Title normalizes a title for comparison purposes: lowercase, collapsed
// whitespace, trimmed.
func Title(s string) string {
	return titlePipeline.Normalize(s)
}

// DOI normalizes a DOI best-effort: lowercase, trimmed, with resolver URL and
// scheme prefixes removed. Shape is never validated, only presence matters
// downstream.
func DOI(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	raw = strings.TrimPrefix(raw, "doi:")
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "dx.doi.org/")
	raw = strings.TrimPrefix(raw, "doi.org/")
	return strings.TrimSpace(raw)
}

// PMID trims a PubMed identifier, removing a pubmed URL prefix, if any.
func PMID(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "https://pubmed.ncbi.nlm.nih.gov/")
	return strings.TrimSuffix(raw, "/")
}

// TokenSortKey returns the sorted token multiset of a normalized title,
// joined by single spaces. Two titles with the same words in different order
// or punctuation share a key.
func TokenSortKey(s string) string {
	words := strings.Fields(tokenPipeline.Normalize(s))
	sort.Strings(words)
	return strings.Join(words, " ")
}

func ReplaceNewlineAndTab(s string) string {
	var sb strings.Builder
	for _, c := range s {
		if c == '\n' || c == '\t' {
			sb.WriteString(" ")
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
