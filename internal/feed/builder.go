// Package feed assembles scraped articles into an RSS 2.0 document and
// provides the built-in artifact generator.
package feed

import (
	"fmt"
	"sort"
	"time"

	"github.com/gorilla/feeds"

	"github.com/qbio/feedship/internal/domain"
)

// Info holds the channel-level feed settings.
type Info struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// Build serializes articles into RSS 2.0 XML.
//
// Articles are sorted by publication date, newest first, with undated
// articles last. Duplicate links are dropped, first occurrence wins.
// GUIDs are permalinks; item titles are prefixed with the source journal.
func Build(articles []domain.Article, info Info, now time.Time) (string, error) {
	sorted := make([]domain.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedOrEpoch().After(sorted[j].PublishedOrEpoch())
	})

	seen := make(map[string]bool, len(sorted))
	var items []*feeds.RssItem
	for _, article := range sorted {
		if seen[article.Link] {
			continue
		}
		seen[article.Link] = true

		item := &feeds.RssItem{
			Title:       fmt.Sprintf("%s: %s", article.Source, article.Title),
			Link:        article.Link,
			Description: article.Summary,
			Guid:        &feeds.RssGuid{Id: article.Link, IsPermaLink: "true"},
		}
		if !article.Published.IsZero() {
			item.PubDate = article.Published.UTC().Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	channel := &feeds.RssFeed{
		Title:         info.Title,
		Link:          info.Link,
		Description:   info.Description,
		Language:      info.Language,
		LastBuildDate: now.UTC().Format(time.RFC1123Z),
		Items:         items,
	}

	xml, err := feeds.ToXML(channel)
	if err != nil {
		return "", fmt.Errorf("feed: serialize rss: %w", err)
	}
	return xml, nil
}
