package domain

import "time"

// Article represents a single research article scraped from a journal
// listing page.
type Article struct {
	// Title is the article headline as shown on the listing page.
	Title string

	// Link is the absolute URL of the article.
	Link string

	// Summary is the listing-page description or contributor line.
	Summary string

	// Published is the publication time in UTC. The zero value means the
	// listing carried no parseable date.
	Published time.Time

	// Source is the name of the journal the article was scraped from.
	Source string

	// Kind is the article-type label captured from the listing card
	// (e.g. "Research Article"). Empty when the page exposes none.
	Kind string
}

// Valid reports whether the article carries the minimum fields required
// to appear in a feed.
func (a Article) Valid() bool {
	return a.Title != "" && a.Link != ""
}

// PublishedOrEpoch returns the publication time, falling back to the Unix
// epoch so undated articles sort after dated ones.
func (a Article) PublishedOrEpoch() time.Time {
	if a.Published.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return a.Published
}
