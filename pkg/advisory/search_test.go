package advisory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubFinder struct {
	pages []string
	err   error

	calls int
}

func (f *stubFinder) SearchPages(ctx context.Context, query, site string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestSearcherFind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage)
	}))
	defer srv.Close()

	finder := &stubFinder{pages: []string{srv.URL}}
	searcher := &Searcher{
		Cli:    srv.Client(),
		Finder: finder,
		Site:   site,
	}

	links, err := searcher.Find(context.Background(), "2.4.49")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if len(links) != 1 || links[0] != "https://www.cvedetails.com/cve/CVE-2021-41773/" {
		t.Errorf("Find() got = %v", links)
	}
}

func TestSearcherFindNoTokens(t *testing.T) {
	finder := &stubFinder{pages: []string{"https://www.cvedetails.com/listing"}}
	searcher := &Searcher{
		Cli:    http.DefaultClient,
		Finder: finder,
		Site:   site,
	}

	links, err := searcher.Find(context.Background(), "Unknown")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if links != nil {
		t.Errorf("expected no links for unknown version, got %v", links)
	}

	if finder.calls != 0 {
		t.Errorf("expected no finder calls for unknown version, got %d", finder.calls)
	}
}

func TestSearcherFindNoCandidatePage(t *testing.T) {
	searcher := &Searcher{
		Cli:    http.DefaultClient,
		Finder: &stubFinder{},
		Site:   site,
	}

	links, err := searcher.Find(context.Background(), "2.4.49")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if links != nil {
		t.Errorf("expected no links without candidate pages, got %v", links)
	}
}

func TestSearcherFindFinderError(t *testing.T) {
	searcher := &Searcher{
		Cli:    http.DefaultClient,
		Finder: &stubFinder{err: errors.New("dns failure")},
		Site:   site,
	}

	if _, err := searcher.Find(context.Background(), "2.4.49"); err == nil {
		t.Error("expected finder error to propagate")
	}
}

func TestSearcherFindFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	searcher := &Searcher{
		Cli:    http.DefaultClient,
		Finder: &stubFinder{pages: []string{url}},
		Site:   site,
	}

	if _, err := searcher.Find(context.Background(), "2.4.49"); err == nil {
		t.Error("expected fetch error to propagate")
	}
}

func TestSearcherFindNoMatchOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><table></table></body></html>")
	}))
	defer srv.Close()

	searcher := &Searcher{
		Cli:    srv.Client(),
		Finder: &stubFinder{pages: []string{srv.URL}},
		Site:   site,
	}

	links, err := searcher.Find(context.Background(), "2.4.49")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if links != nil {
		t.Errorf("expected no links, got %v", links)
	}
}
