package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"listinglab/internal/crawler"
	"listinglab/internal/export"
	"listinglab/internal/model"
)

type scraperView struct {
	Query    string
	Pages    int
	MaxPages int

	Ran      bool
	Fetched  int
	Skipped  int
	Columns  []string
	Listings []model.Listing
	CSVLink  template.URL
	XLSXLink template.URL
}

func (s *Server) newScraperView() scraperView {
	return scraperView{Pages: s.DefaultPages, MaxPages: s.Crawler.MaxPages}
}

func (s *Server) handleScraperForm(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, http.StatusOK, "scraper", s.newScraperView())
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	v := s.newScraperView()
	v.Query = strings.TrimSpace(r.PostForm.Get("q"))

	pages, err := strconv.Atoi(r.PostForm.Get("pages"))
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: invalid page count %q", crawler.ErrInvalidPages, r.PostForm.Get("pages")))
		return
	}
	v.Pages = pages

	run, err := s.Crawler.Scrape(r.Context(), v.Query, pages)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	listings := crawler.FilterNamed(run.Listings)

	var csvBuf, xlsxBuf bytes.Buffer
	if err := export.WriteCSV(&csvBuf, listings); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := export.WriteXLSX(&xlsxBuf, listings); err != nil {
		s.fail(w, r, err)
		return
	}

	if s.Archive != nil {
		if err := s.Archive.SaveRun(r.Context(), run, listings); err != nil {
			log.Printf("[Scraper] falha ao arquivar execução %s: %v", run.ID, err)
		}
	}

	v.Ran = true
	v.Fetched = run.PagesFetched
	v.Skipped = run.PagesSkipped
	v.Columns = model.Columns()
	v.Listings = listings
	v.CSVLink = template.URL(export.DataURI(export.MimeCSV, csvBuf.Bytes()))
	v.XLSXLink = template.URL(export.DataURI(export.MimeXLSX, xlsxBuf.Bytes()))

	s.pages.render(w, http.StatusOK, "scraper", v)
}
