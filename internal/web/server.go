package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"listinglab/internal/crawler"
	"listinglab/internal/dataset"
	"listinglab/internal/insights"
	"listinglab/internal/model"
	"listinglab/internal/observability"
	"listinglab/internal/repository"
	"listinglab/internal/store"
)

// RunArchive grava as execuções do scraper; *repository.ListingRepository implementa.
type RunArchive interface {
	SaveRun(ctx context.Context, run *model.ScrapeRun, listings []model.Listing) error
}

// UploadLog registra os arquivos enviados; *repository.UploadRepository implementa.
type UploadLog interface {
	Save(u model.DatasetUpload) error
}

var (
	_ RunArchive = (*repository.ListingRepository)(nil)
	_ UploadLog  = (*repository.UploadRepository)(nil)
)

type Server struct {
	Store     store.Store
	Crawler   *crawler.Crawler
	Suggester insights.Suggester

	// opcionais
	Archive RunArchive
	Uploads UploadLog

	MaxUploadBytes int64
	DefaultPages   int

	pages pages
}

func NewServer(s store.Store, c *crawler.Crawler, sg insights.Suggester) (*Server, error) {
	p, err := parsePages("index", "error", "upload", "report", "scraper")
	if err != nil {
		return nil, err
	}
	return &Server{
		Store:          s,
		Crawler:        c,
		Suggester:      sg,
		MaxUploadBytes: 32 << 20,
		DefaultPages:   crawler.DefaultPages,
		pages:          p,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests, s.recoverPanics)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", observability.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/dashboard", s.handleUploadForm).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/dashboard/{id}", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/{id}/charts/{kind}", s.handleChart).Methods(http.MethodGet)

	r.HandleFunc("/scraper", s.handleScraperForm).Methods(http.MethodGet)
	r.HandleFunc("/scraper", s.handleScrape).Methods(http.MethodPost)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, http.StatusOK, "index", nil)
}

// fail é a rede de segurança única dos dois fluxos: qualquer erro vira a
// mesma página genérica.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrEmptyFile),
		errors.Is(err, dataset.ErrUnknownColumn),
		errors.Is(err, dataset.ErrNotNumeric),
		errors.Is(err, crawler.ErrInvalidPages),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}

	observability.DashboardFailures.Inc()
	log.Printf("[Web] %s %s: %v", r.Method, r.URL.Path, err)
	s.pages.render(w, status, "error", struct{ Message string }{err.Error()})
}

var errBadRequest = errors.New("bad request")

func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[Web] panic em %s %s: %v", r.Method, r.URL.Path, rec)
				observability.DashboardFailures.Inc()
				s.pages.render(w, http.StatusInternalServerError, "error", struct{ Message string }{"unexpected failure"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[Web] %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
