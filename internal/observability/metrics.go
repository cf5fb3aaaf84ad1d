package observability

import (
	"log"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_pages_fetched_total",
			Help: "Páginas de busca baixadas com status 200",
		},
	)
	PagesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_pages_skipped_total",
			Help: "Páginas ignoradas por status diferente de 200",
		},
	)
	ListingsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_listings_extracted_total",
			Help: "Anúncios extraídos (antes do filtro por nome)",
		},
	)
	DatasetUploads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_uploads_total",
			Help: "Arquivos carregados no dashboard",
		},
	)
	DashboardFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_failures_total",
			Help: "Erros exibidos pela rede de segurança do dashboard e do scraper",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(PagesFetched, PagesSkipped, ListingsExtracted, DatasetUploads, DashboardFailures)
	})
}

// Handler expõe as métricas para ser montado num router existente.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// Start sobe um servidor só de métricas, usado pelas ferramentas de linha de comando.
func Start(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("[Metrics] servidor de métricas parou: %v", err)
		}
	}()
}
