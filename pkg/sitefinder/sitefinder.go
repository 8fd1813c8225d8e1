package sitefinder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const searchEndpoint = "https://html.duckduckgo.com/html/"

// Finder turns a free-text query plus a domain restriction into an
// ordered list of candidate page URLs, most relevant first.
type Finder interface {
	SearchPages(ctx context.Context, query, site string) ([]string, error)
}

// WebFinder queries the DuckDuckGo HTML endpoint. Result order is the
// engine's own ranking order and is kept as-is.
type WebFinder struct {
	Cli *http.Client
}

func NewWebFinder(timeout time.Duration) *WebFinder {
	tr := &http.Transport{
		IdleConnTimeout:    60 * time.Second,
		DisableCompression: true,
	}

	return &WebFinder{
		Cli: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
	}
}

func (f *WebFinder) SearchPages(ctx context.Context, query, site string) ([]string, error) {
	return f.searchAt(ctx, searchEndpoint, query, site)
}

func (f *WebFinder) searchAt(ctx context.Context, endpoint, query, site string) ([]string, error) {

	host := siteHost(site)

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s site:%s", query, host))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := f.Cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request returned status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, err
	}

	pages := []string{}
	doc.Find("a.result__a").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		link := resolveResultLink(href)
		if link == "" {
			return
		}

		if u, err := url.Parse(link); err == nil && strings.HasSuffix(u.Host, host) {
			pages = append(pages, link)
		}
	})

	return pages, nil
}

// resolveResultLink unwraps the engine's redirect links, which carry
// the target page in the "uddg" parameter. Plain links pass through.
func resolveResultLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if target := u.Query().Get("uddg"); target != "" {
		return target
	}

	if u.Scheme == "http" || u.Scheme == "https" {
		return href
	}

	return ""
}

func siteHost(site string) string {
	host := strings.TrimPrefix(site, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}
