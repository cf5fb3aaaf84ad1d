package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"

	"listinglab/internal/charts"
	"listinglab/internal/dataset"
	"listinglab/internal/model"
	"listinglab/internal/observability"
)

func (s *Server) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, http.StatusOK, "upload", struct{ MaxUpload int64 }{s.MaxUploadBytes})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.MaxUploadBytes); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: missing file: %v", errBadRequest, err))
		return
	}
	defer file.Close()

	t, err := dataset.Load(header.Filename, file)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id, err := s.Store.Put(r.Context(), t)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	rows, cols := t.Shape()
	observability.DatasetUploads.Inc()
	log.Printf("[Dashboard] %s (%s) carregado: %s linhas, %d colunas", t.Name, humanize.Bytes(uint64(header.Size)), humanize.Comma(int64(rows)), cols)

	if s.Uploads != nil {
		err := s.Uploads.Save(model.DatasetUpload{
			ID:         id,
			FileName:   t.Name,
			SizeBytes:  header.Size,
			Rows:       rows,
			Columns:    cols,
			UploadedAt: time.Now(),
		})
		if err != nil {
			log.Printf("[Dashboard] falha ao registrar upload %s: %v", id, err)
		}
	}

	http.Redirect(w, r, "/dashboard/"+id, http.StatusSeeOther)
}

type reportView struct {
	ID             string
	Summary        *dataset.Summary
	ObjectColumns  []string
	NumericColumns []string
	Cat            []string
	X, Hue         string
	Pair           []string
	PairQuery      template.URL
	SX, SY         string
	Suggestions    []string
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	t, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	q := r.URL.Query()
	v := reportView{
		ID:             id,
		Summary:        dataset.Summarize(t),
		ObjectColumns:  t.ObjectColumns(),
		NumericColumns: t.NumericColumns(),
	}

	v.Cat = pick(q["cat"], v.ObjectColumns)
	v.X = choose(q.Get("x"), v.Cat)
	v.Hue = choose(q.Get("hue"), v.Cat)
	v.Pair = pick(q["pair"], v.NumericColumns)
	v.SX = choose(q.Get("sx"), v.NumericColumns)
	v.SY = choose(q.Get("sy"), v.NumericColumns)

	pair := url.Values{"col": v.Pair}
	v.PairQuery = template.URL(pair.Encode())

	v.Suggestions, err = s.Suggester.Suggest(r.Context(), v.Summary)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.pages.render(w, http.StatusOK, "report", v)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	t, err := s.Store.Get(r.Context(), vars["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}

	q := r.URL.Query()
	var buf bytes.Buffer

	switch vars["kind"] {
	case "bar":
		err = charts.ValueCountsBar(&buf, t, q.Get("col"))
	case "grouped":
		err = charts.GroupedBar(&buf, t, q.Get("x"), q.Get("hue"))
	case "hist":
		err = charts.Histogram(&buf, t, q.Get("col"))
	case "heatmap":
		err = charts.CorrelationHeatmap(&buf, t)
	case "pair":
		err = charts.PairPlot(&buf, t, q["col"])
	case "scatter":
		err = charts.Scatter(&buf, t, q.Get("x"), q.Get("y"))
	default:
		err = fmt.Errorf("%w: unknown chart %q", errBadRequest, vars["kind"])
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// pick mantém só as colunas pedidas que existem, na ordem da tabela.
func pick(requested, allowed []string) []string {
	want := make(map[string]bool, len(requested))
	for _, c := range requested {
		want[c] = true
	}
	var out []string
	for _, c := range allowed {
		if want[c] {
			out = append(out, c)
		}
	}
	return out
}

// choose usa a primeira opção quando o valor pedido não é válido, como um
// seletor que começa na primeira opção.
func choose(requested string, options []string) string {
	for _, o := range options {
		if o == requested {
			return o
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}
