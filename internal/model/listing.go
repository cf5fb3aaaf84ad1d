package model

import "time"

// Sentinel substitui qualquer campo que não foi encontrado na página.
const Sentinel = "N/A"

type Listing struct {
	Name          string
	Description   string
	OriginalPrice string
	Discount      string
	Price         string
	ImageURL      string
}

// Columns é a ordem das colunas na tabela exibida e nos arquivos exportados.
func Columns() []string {
	return []string{
		"Product Name",
		"Product Description",
		"Original Price",
		"Discount",
		"Product Price",
		"Image Link",
	}
}

func (l Listing) Row() []string {
	return []string{l.Name, l.Description, l.OriginalPrice, l.Discount, l.Price, l.ImageURL}
}

type ScrapeRun struct {
	ID           string
	Query        string
	Pages        int
	PagesFetched int
	PagesSkipped int
	Listings     []Listing
	StartedAt    time.Time
	FinishedAt   time.Time
}
