// Package scrape extracts articles from journal listing pages.
//
// Each supported journal renders its listing differently, so each gets
// its own CSS-selector parser. Parsers are tolerant: cards missing a
// title link are skipped, dates that fail to parse yield undated
// articles, and relative links are resolved against the journal base URL.
package scrape

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/qbio/feedship/internal/domain"
)

// ParseFunc extracts articles from a parsed listing document.
type ParseFunc func(doc *goquery.Document, journal domain.Journal) []domain.Article

// parsers dispatches by journal name.
var parsers = map[string]ParseFunc{
	"Cell":    ParseCell,
	"Nature":  ParseNature,
	"Science": ParseScience,
}

// ParserFor returns the parser registered for the journal name.
func ParserFor(name string) (ParseFunc, bool) {
	p, ok := parsers[name]
	return p, ok
}

// Parse extracts, validates, and filters articles for a journal.
// Articles without a title or link are dropped, then the journal's term
// filters are applied.
func Parse(html string, journal domain.Journal) ([]domain.Article, error) {
	parser, ok := ParserFor(journal.Name)
	if !ok {
		return nil, fmt.Errorf("scrape: no parser for journal %q", journal.Name)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("scrape: parse html: %w", err)
	}

	candidates := parser(doc, journal)

	articles := make([]domain.Article, 0, len(candidates))
	for _, a := range candidates {
		if !a.Valid() {
			continue
		}
		if !journal.Allows(a) {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// ParseNature extracts article cards from the Nature research page.
func ParseNature(doc *goquery.Document, journal domain.Journal) []domain.Article {
	var articles []domain.Article
	doc.Find("article.c-card").Each(func(_ int, card *goquery.Selection) {
		title := card.Find("h3.c-card__title a").First()
		if title.Length() == 0 {
			return
		}

		timeTag := card.Find(`time[itemprop="datePublished"]`).First()
		published := timeAttrOrText(timeTag)

		articles = append(articles, domain.Article{
			Title:     collapseText(title),
			Link:      resolveLink(journal.BaseURL, title.AttrOr("href", "")),
			Summary:   collapseText(card.Find(`div[data-test="article-description"] p`).First()),
			Published: published,
			Source:    journal.Name,
		})
	})
	return articles
}

// ParseScience extracts article cards from the Science research page.
func ParseScience(doc *goquery.Document, journal domain.Journal) []domain.Article {
	var articles []domain.Article
	doc.Find("div.card-content, article.card-do").Each(func(_ int, card *goquery.Selection) {
		title := card.Find("h3.article-title a").First()
		if title.Length() == 0 {
			title = card.Find("div.card__title a").First()
		}
		if title.Length() == 0 {
			return
		}

		timeTag := card.Find("span.card-meta__item time").First()
		published := timeAttrOrText(timeTag)

		// The first meta item that is not the date carries the article
		// type label, when the card has one.
		var kind string
		card.Find("span.card-meta__item").EachWithBreak(func(_ int, meta *goquery.Selection) bool {
			if meta.Find("time").Length() > 0 {
				return true
			}
			kind = collapseText(meta)
			return kind == ""
		})

		articles = append(articles, domain.Article{
			Title:     collapseText(title),
			Link:      resolveLink(journal.BaseURL, title.AttrOr("href", "")),
			Summary:   collapseText(card.Find("ul.card-contribs").First()),
			Published: published,
			Source:    journal.Name,
			Kind:      kind,
		})
	})
	return articles
}

// ParseCell extracts table-of-contents items from the Cell new-articles
// page.
func ParseCell(doc *goquery.Document, journal domain.Journal) []domain.Article {
	var articles []domain.Article
	doc.Find("div.toc__item").Each(func(_ int, item *goquery.Selection) {
		title := item.Find("h3.toc__item__title a").First()
		if title.Length() == 0 {
			return
		}

		articles = append(articles, domain.Article{
			Title:     collapseText(title),
			Link:      resolveLink(journal.BaseURL, title.AttrOr("href", "")),
			Summary:   collapseText(item.Find("div.toc__item__brief").First()),
			Published: ParseDate(collapseText(item.Find("div.toc__item__date").First())),
			Source:    journal.Name,
		})
	})
	return articles
}

// timeAttrOrText parses the datetime attribute of a <time> element,
// falling back to its text content.
func timeAttrOrText(sel *goquery.Selection) time.Time {
	if sel.Length() == 0 {
		return time.Time{}
	}
	if attr, ok := sel.Attr("datetime"); ok && attr != "" {
		if t := ParseDate(attr); !t.IsZero() {
			return t
		}
	}
	return ParseDate(collapseText(sel))
}

// collapseText returns the selection's text with whitespace collapsed to
// single spaces.
func collapseText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// resolveLink resolves href against the journal base URL, mirroring
// urljoin semantics. Unresolvable links come back unchanged.
func resolveLink(base, href string) string {
	if href == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
