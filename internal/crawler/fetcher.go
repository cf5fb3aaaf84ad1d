package crawler

import (
	"context"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0"

type Fetcher interface {
	Fetch(ctx context.Context, url string) (status int, body []byte, err error)
}

// HTTPFetcher faz um GET por chamada. Sem retry e sem timeout próprio:
// valem os padrões do cliente.
type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher(userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html")
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode(), res.Body(), nil
}
