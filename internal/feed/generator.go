package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/qbio/feedship/internal/adapters/fs"
	"github.com/qbio/feedship/internal/domain"
	"github.com/qbio/feedship/internal/ports"
	"github.com/qbio/feedship/internal/scrape"
)

// Generator is the built-in implementation of ports.Generator: it scrapes
// every configured journal, assembles the feed, and writes the artifact
// atomically.
type Generator struct {
	journals   []domain.Journal
	info       Info
	outputPath string
	fetcher    ports.PageFetcher
	logger     ports.Logger

	// now is swapped in tests to pin lastBuildDate.
	now func() time.Time
}

// NewGenerator constructs the built-in generator. outputPath is the
// absolute path of the artifact file.
func NewGenerator(
	journals []domain.Journal,
	info Info,
	outputPath string,
	fetcher ports.PageFetcher,
	logger ports.Logger,
) *Generator {
	return &Generator{
		journals:   journals,
		info:       info,
		outputPath: outputPath,
		fetcher:    fetcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Generate fetches all journals and writes the RSS artifact.
// A fetch or parse failure for any journal fails the whole run: a feed
// silently missing a journal would be committed as a spurious change.
func (g *Generator) Generate(ctx context.Context) error {
	var articles []domain.Article

	for _, journal := range g.journals {
		g.logger.Info("fetching journal", ports.String("journal", journal.Name))

		html, err := g.fetcher.FetchHTML(ctx, journal.URL)
		if err != nil {
			return fmt.Errorf("%w: fetch %s: %v", domain.ErrGenerate, journal.Name, err)
		}

		parsed, err := scrape.Parse(html, journal)
		if err != nil {
			return fmt.Errorf("%w: parse %s: %v", domain.ErrGenerate, journal.Name, err)
		}

		g.logger.Info("extracted articles",
			ports.String("journal", journal.Name),
			ports.Int("count", len(parsed)),
		)
		articles = append(articles, parsed...)
	}

	xml, err := Build(articles, g.info, g.now())
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGenerate, err)
	}

	if err := fs.WriteFileAtomic(g.outputPath, []byte(xml)); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrGenerate, g.outputPath, err)
	}

	g.logger.Info("artifact written",
		ports.String("path", g.outputPath),
		ports.Int("articles", len(articles)),
	)
	return nil
}
