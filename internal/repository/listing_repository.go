package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"listinglab/internal/model"
)

// ListingRepository arquiva as execuções do scraper. É opcional: só existe
// quando DATABASE_URL está configurado.
type ListingRepository struct {
	DB *pgxpool.Pool
}

func (r *ListingRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS scrape_runs (
		id UUID PRIMARY KEY,
		query TEXT NOT NULL,
		pages INT NOT NULL,
		pages_fetched INT NOT NULL,
		pages_skipped INT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scraped_listings (
		run_id UUID NOT NULL REFERENCES scrape_runs(id) ON DELETE CASCADE,
		position INT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		original_price TEXT NOT NULL,
		discount TEXT NOT NULL,
		price TEXT NOT NULL,
		image_url TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`

	if _, err := r.DB.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveRun grava a execução e os anúncios numa única transação.
func (r *ListingRepository) SaveRun(ctx context.Context, run *model.ScrapeRun, listings []model.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO scrape_runs (id, query, pages, pages_fetched, pages_skipped, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Query, run.Pages, run.PagesFetched, run.PagesSkipped, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	batch := &pgx.Batch{}
	for i, l := range listings {
		batch.Queue(`
			INSERT INTO scraped_listings (run_id, position, name, description, original_price, discount, price, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, run.ID, i, l.Name, l.Description, l.OriginalPrice, l.Discount, l.Price, l.ImageURL)
	}

	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("batch insert failed at row %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
	}

	return tx.Commit(ctx)
}

type RunSummary struct {
	ID         string
	Query      string
	Pages      int
	Listings   int
	FinishedAt time.Time
}

func (r *ListingRepository) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT r.id::text, r.query, r.pages, COUNT(l.position), r.finished_at
		FROM scrape_runs r
		LEFT JOIN scraped_listings l ON l.run_id = r.id
		GROUP BY r.id
		ORDER BY r.finished_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.Query, &s.Pages, &s.Listings, &s.FinishedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
