package main

import (
	"context"
	"log"
	"net/http"

	"listinglab/internal/config"
	"listinglab/internal/crawler"
	"listinglab/internal/db"
	"listinglab/internal/insights"
	"listinglab/internal/repository"
	"listinglab/internal/store"
	"listinglab/internal/web"
)

// go run cmd/web/main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	ctx := context.Background()

	var datasets store.Store = store.NewMemoryStore(cfg.DatasetTTL)
	if cfg.RedisURL != "" {
		rs := store.NewRedisStore(cfg.RedisURL, cfg.DatasetTTL)
		if err := rs.Ping(ctx); err != nil {
			log.Fatalf("Não foi possível conectar ao Redis: %v", err)
		}
		datasets = rs
		log.Println("Planilhas guardadas no Redis")
	}

	c := crawler.New(crawler.NewHTTPFetcher(cfg.UserAgent), cfg.SearchURL)
	c.MaxPages = cfg.MaxPages

	srv, err := web.NewServer(datasets, c, insights.New(cfg.OpenAIKey, cfg.OpenAIModel))
	if err != nil {
		log.Fatalf("Erro ao preparar templates: %v", err)
	}
	srv.DefaultPages = cfg.DefaultPages
	srv.MaxUploadBytes = cfg.MaxUploadBytes

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
		}
		defer pool.Close()

		listings := &repository.ListingRepository{DB: pool}
		if err := listings.EnsureSchema(ctx); err != nil {
			log.Fatalf("Erro ao criar tabelas de coleta: %v", err)
		}
		srv.Archive = listings

		sqlDB, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Erro ao abrir conexão: %v", err)
		}
		defer sqlDB.Close()

		uploads := &repository.UploadRepository{DB: sqlDB}
		if err := uploads.EnsureSchema(); err != nil {
			log.Fatalf("Erro ao criar tabela de uploads: %v", err)
		}
		srv.Uploads = uploads
	}

	log.Printf("Servidor ouvindo em %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Routes()); err != nil {
		log.Fatalf("Servidor encerrado: %v", err)
	}
}
