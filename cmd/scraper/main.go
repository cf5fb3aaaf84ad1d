package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"listinglab/internal/config"
	"listinglab/internal/crawler"
	"listinglab/internal/db"
	"listinglab/internal/export"
	"listinglab/internal/model"
	"listinglab/internal/observability"
	"listinglab/internal/repository"
)

// go run cmd/scraper/main.go -q="iphone" -pages=3 -out=iphone.csv
// go run cmd/scraper/main.go -q="notebook" -out=notebook.xlsx -archive
// go run cmd/scraper/main.go -history=10
func main() {
	query := flag.String("q", "", "Produto a buscar")
	pages := flag.Int("pages", crawler.DefaultPages, "Última página a coletar (1 a 50)")
	out := flag.String("out", "", "Arquivo de saída (.csv ou .xlsx)")
	archive := flag.Bool("archive", false, "Grava a execução no Postgres (DATABASE_URL)")
	history := flag.Int("history", 0, "Lista as últimas N execuções gravadas e sai")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	ctx := context.Background()

	var repo *repository.ListingRepository
	if *archive || *history > 0 {
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL não definido")
		}
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
		}
		defer pool.Close()

		repo = &repository.ListingRepository{DB: pool}
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Erro ao criar tabelas: %v", err)
		}
	}

	if *history > 0 {
		printHistory(ctx, repo, *history)
		return
	}

	if strings.TrimSpace(*query) == "" {
		log.Fatal("Informe o produto com -q")
	}

	observability.Start(cfg.MetricsPort)

	c := crawler.New(crawler.NewHTTPFetcher(cfg.UserAgent), cfg.SearchURL)
	c.MaxPages = cfg.MaxPages

	run, err := c.Scrape(ctx, *query, *pages)
	if err != nil {
		log.Fatalf("Erro na coleta: %v", err)
	}
	listings := crawler.FilterNamed(run.Listings)

	printListings(listings)

	if *out != "" {
		if err := writeFile(*out, listings); err != nil {
			log.Fatalf("Erro ao salvar %s: %v", *out, err)
		}
		log.Printf("%d produtos salvos em %s", len(listings), *out)
	}

	if repo != nil {
		if err := repo.SaveRun(ctx, run, listings); err != nil {
			log.Fatalf("Erro ao arquivar execução: %v", err)
		}
		log.Printf("Execução %s arquivada", run.ID)
	}

	log.Println("Scraper finalizado")
}

func writeFile(path string, listings []model.Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return export.WriteXLSX(f, listings)
	case ".csv":
		return export.WriteCSV(f, listings)
	default:
		return fmt.Errorf("unsupported output %q (use .csv or .xlsx)", path)
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printListings(listings []model.Listing) {
	t := newTable()

	header := table.Row{}
	for _, c := range model.Columns() {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, l := range listings {
		row := table.Row{}
		for _, v := range l.Row() {
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func printHistory(ctx context.Context, repo *repository.ListingRepository, limit int) {
	runs, err := repo.RecentRuns(ctx, limit)
	if err != nil {
		log.Fatalf("Erro ao listar execuções: %v", err)
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Query", "Pages", "Listings", "Finished"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, r.Query, r.Pages, r.Listings, humanize.Time(r.FinishedAt)})
	}
	t.Render()
}
