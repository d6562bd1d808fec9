// Package search turns a query into the ordered result list shown by the search view.
//
// There is no index behind it: Expand fills five fixed templates with the query.
// Engine is the seam where a real backend would plug in.
package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sitesearch/internal/domain"
)

// DefaultSite is used when no site context is supplied
const DefaultSite = "example.com"

// template describes one fabricated result shape
type template struct {
	title     string // %[1]s is the raw query
	section   string // prefix the slug is appended to
	snippet   string
	relevance float64
}

var templates = []template{
	{
		title:     "%[1]s - Main Documentation",
		section:   "docs/",
		snippet:   "Comprehensive guide about %[1]s. Learn how to implement and optimize %[1]s for your projects.",
		relevance: 0.95,
	},
	{
		title:     "Getting Started with %[1]s",
		section:   "tutorials/getting-started-with-",
		snippet:   "This tutorial walks you through the basics of %[1]s and provides examples of common use cases.",
		relevance: 0.88,
	},
	{
		title:     "%[1]s API Reference",
		section:   "api/",
		snippet:   "Complete API documentation for %[1]s including parameters, return values, and example code.",
		relevance: 0.82,
	},
	{
		title:     "Advanced %[1]s Techniques",
		section:   "advanced/",
		snippet:   "Explore advanced techniques and best practices for %[1]s implementation in complex scenarios.",
		relevance: 0.75,
	},
	{
		title:     "%[1]s FAQ",
		section:   "faq#",
		snippet:   "Frequently asked questions about %[1]s with detailed answers from our experts.",
		relevance: 0.68,
	},
}

// ResultCount is the number of results a non-blank query expands to
var ResultCount = len(templates)

// Expand builds the result list for query on site.
// A query that is blank after trimming yields nil.
func Expand(query, site string) []domain.SearchResult {
	if IsBlank(query) {
		return nil
	}
	if site == "" {
		site = DefaultSite
	}

	slug := Slugify(query)
	results := make([]domain.SearchResult, 0, len(templates))
	for i, t := range templates {
		results = append(results, domain.SearchResult{
			ID:        fmt.Sprintf("%d", i+1),
			Title:     fmt.Sprintf(t.title, query),
			URL:       fmt.Sprintf("https://%s/%s%s", site, t.section, slug),
			Snippet:   fmt.Sprintf(t.snippet, query),
			Relevance: t.relevance,
		})
	}
	return results
}

// IsBlank reports whether query holds nothing but whitespace
func IsBlank(query string) bool {
	return strings.TrimFunc(query, isSpace) == ""
}

// Slugify lowercases s and collapses every run of whitespace into a single hyphen.
// Leading and trailing runs are kept as hyphens.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range cases.Lower(language.Und).String(s) {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// isSpace is the ECMAScript whitespace and line terminator set.
// Unlike unicode.IsSpace it includes U+FEFF and excludes U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
