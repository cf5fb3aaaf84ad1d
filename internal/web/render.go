package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"num": func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"has": func(list []string, v string) bool {
		for _, s := range list {
			if s == v {
				return true
			}
		}
		return false
	},
	"bytes": func(n int64) string {
		return humanize.Bytes(uint64(n))
	},
}

type pages map[string]*template.Template

func parsePages(names ...string) (pages, error) {
	out := make(pages, len(names))
	for _, name := range names {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// render executa a página num buffer para que um erro de template não deixe
// a resposta pela metade.
func (p pages) render(w http.ResponseWriter, status int, name string, data interface{}) {
	t, ok := p[name]
	if !ok {
		http.Error(w, "unknown page "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("[Web] erro ao renderizar %s: %v", name, err)
		http.Error(w, "An error occurred: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
