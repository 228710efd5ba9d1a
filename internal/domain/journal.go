package domain

import "strings"

// Journal describes one journal listing page to scrape and the term
// filters applied to its articles.
type Journal struct {
	// Name identifies the journal and selects its parser.
	Name string

	// URL is the listing page to fetch.
	URL string

	// BaseURL resolves relative article links.
	BaseURL string

	// IncludeTerms restricts articles by their type label. An article
	// whose Kind is set must match one of these terms; articles without a
	// label always pass. Empty means no restriction.
	IncludeTerms []string

	// ExcludeTerms rejects articles whose title or type label contains
	// any of these terms.
	ExcludeTerms []string
}

// Allows reports whether an article passes the journal's term filters.
// Matching is case-insensitive substring matching.
func (j Journal) Allows(a Article) bool {
	title := strings.ToLower(a.Title)
	kind := strings.ToLower(a.Kind)

	for _, term := range j.ExcludeTerms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(title, t) || (kind != "" && strings.Contains(kind, t)) {
			return false
		}
	}

	if len(j.IncludeTerms) == 0 || kind == "" {
		return true
	}
	for _, term := range j.IncludeTerms {
		if strings.Contains(kind, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
