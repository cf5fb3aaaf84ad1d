package crawler

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"listinglab/internal/model"
)

// Selectors aponta para os elementos de um card de produto na página de busca.
// Se o site mudar as classes, todos os campos passam a vir como sentinela.
type Selectors struct {
	Container     string
	Name          string
	Description   string
	Price         string
	OriginalPrice string
	Discount      string
	Image         string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Container:     "div._1AtVbE",
		Name:          "div._4rR01T",
		Description:   "li.rgWa7D",
		Price:         "div._30jeq3",
		OriginalPrice: "div._3I9_wc",
		Discount:      "div._3Ay6Sb",
		Image:         "img._396cs4",
	}
}

// ParseListings extrai um Listing por card, na ordem em que aparecem na página.
func ParseListings(r io.Reader, sel Selectors) ([]model.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	var listings []model.Listing
	doc.Find(sel.Container).Each(func(_ int, card *goquery.Selection) {
		listings = append(listings, model.Listing{
			Name:          childText(card, sel.Name, nil),
			Description:   childText(card, sel.Description, nil),
			OriginalPrice: childText(card, sel.OriginalPrice, CleanText),
			Discount: childText(card, sel.Discount, func(s string) string {
				return ExtractNumeric(CleanText(s))
			}),
			Price:    childText(card, sel.Price, CleanText),
			ImageURL: childAttr(card, sel.Image, "src"),
		})
	})

	return listings, nil
}

func childText(card *goquery.Selection, selector string, clean func(string) string) string {
	el := card.Find(selector).First()
	if el.Length() == 0 {
		return model.Sentinel
	}
	text := strings.TrimSpace(el.Text())
	if clean != nil {
		text = clean(text)
	}
	return text
}

func childAttr(card *goquery.Selection, selector, attr string) string {
	v, ok := card.Find(selector).First().Attr(attr)
	if !ok {
		return model.Sentinel
	}
	return v
}
