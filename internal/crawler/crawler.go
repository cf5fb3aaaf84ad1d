package crawler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"listinglab/internal/model"
	"listinglab/internal/observability"
)

const (
	DefaultSearchURL = "https://www.flipkart.com/search?q=%s&page=%d"
	MaxPages         = 50
	DefaultPages     = 5
)

var ErrInvalidPages = errors.New("page count out of range")

type Crawler struct {
	Fetcher     Fetcher
	URLTemplate string
	Selectors   Selectors
	MaxPages    int
}

func New(fetcher Fetcher, urlTemplate string) *Crawler {
	if urlTemplate == "" {
		urlTemplate = DefaultSearchURL
	}
	return &Crawler{
		Fetcher:     fetcher,
		URLTemplate: urlTemplate,
		Selectors:   DefaultSelectors(),
		MaxPages:    MaxPages,
	}
}

func (c *Crawler) SearchURL(query string, page int) string {
	return fmt.Sprintf(c.URLTemplate, url.QueryEscape(query), page)
}

// Scrape percorre as páginas 1..maxPages em sequência, uma requisição por página.
// Páginas com status diferente de 200 são ignoradas sem erro; falha de rede
// interrompe a execução.
func (c *Crawler) Scrape(ctx context.Context, query string, maxPages int) (*model.ScrapeRun, error) {
	limit := c.MaxPages
	if limit <= 0 {
		limit = MaxPages
	}
	if maxPages < 1 || maxPages > limit {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidPages, maxPages, limit)
	}

	run := &model.ScrapeRun{
		ID:        uuid.New().String(),
		Query:     query,
		Pages:     maxPages,
		StartedAt: time.Now(),
	}

	for page := 1; page <= maxPages; page++ {
		pageURL := c.SearchURL(query, page)

		status, body, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
		}

		if status != http.StatusOK {
			run.PagesSkipped++
			observability.PagesSkipped.Inc()
			continue
		}

		listings, err := ParseListings(bytes.NewReader(body), c.Selectors)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		run.PagesFetched++
		observability.PagesFetched.Inc()
		observability.ListingsExtracted.Add(float64(len(listings)))
		run.Listings = append(run.Listings, listings...)
	}

	run.FinishedAt = time.Now()
	log.Printf("[Scraper] busca %q: %d páginas baixadas, %d ignoradas, %d anúncios",
		query, run.PagesFetched, run.PagesSkipped, len(run.Listings))

	return run, nil
}

// FilterNamed remove os anúncios sem nome, preservando a ordem.
func FilterNamed(listings []model.Listing) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Name == model.Sentinel {
			continue
		}
		out = append(out, l)
	}
	return out
}
