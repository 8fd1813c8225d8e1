package advisory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vexfind/vexfind/pkg/sitefinder"
	"github.com/vexfind/vexfind/pkg/vertoken"
)

// Searcher finds the advisory link best matching one service version.
// The finder narrows the listing by service, the extractor narrows the
// winning listing page by version.
type Searcher struct {
	Cli    *http.Client
	Finder sitefinder.Finder

	// Site is the advisory listing domain, e.g. https://www.cvedetails.com
	Site string
}

func NewSearcher(finder sitefinder.Finder, site string, timeout time.Duration) *Searcher {
	tr := &http.Transport{
		IdleConnTimeout:    60 * time.Second,
		DisableCompression: true,
	}

	return &Searcher{
		Cli: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
		Finder: finder,
		Site:   site,
	}
}

// Find returns at most one advisory URL for the version. A nil slice
// with nil error means no reliable match; a network failure during the
// listing lookup or the page fetch is returned to the caller.
func (s *Searcher) Find(ctx context.Context, serviceVersion string) ([]string, error) {

	tokens := vertoken.Tokens(serviceVersion)
	if len(tokens) == 0 {
		return nil, nil
	}

	pages, err := s.Finder.SearchPages(ctx, vertoken.Canonical(serviceVersion), s.Site)
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, nil
	}

	page, err := s.fetch(ctx, pages[0])
	if err != nil {
		return nil, err
	}

	if link := ExtractLink(page, tokens, s.Site); link != "" {
		return []string{link}, nil
	}

	return nil, nil
}

func (s *Searcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.Cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisory page %s: %w", url, err)
	}
	defer res.Body.Close()

	return io.ReadAll(res.Body)
}
