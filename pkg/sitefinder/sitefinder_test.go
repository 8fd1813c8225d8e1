package sitefinder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"
)

const resultPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.cvedetails.com%2Fvulnerability-list%2Fvendor_id-45%2Fproduct_id-47%2FApache-Http-Server.html">Apache Http Server</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.cvedetails.com/cve/CVE-2021-41773/">CVE-2021-41773</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.org/unrelated">Unrelated</a>
</div>
</body></html>`

func TestSearchPages(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		io.WriteString(w, resultPage)
	}))
	defer srv.Close()

	finder := &WebFinder{Cli: srv.Client()}

	pages, err := finder.searchAt(context.Background(), srv.URL, "2.4.49", "https://www.cvedetails.com")
	if err != nil {
		t.Fatalf("SearchPages() error = %v", err)
	}

	want := []string{
		"https://www.cvedetails.com/vulnerability-list/vendor_id-45/product_id-47/Apache-Http-Server.html",
		"https://www.cvedetails.com/cve/CVE-2021-41773/",
	}

	if !reflect.DeepEqual(pages, want) {
		t.Errorf("SearchPages() got = %v, want %v", pages, want)
	}

	if gotQuery != "2.4.49 site:www.cvedetails.com" {
		t.Errorf("unexpected search query: %q", gotQuery)
	}
}

func TestSearchPagesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer srv.Close()

	finder := &WebFinder{Cli: srv.Client()}

	pages, err := finder.searchAt(context.Background(), srv.URL, "1.0", "https://www.exploit-db.com")
	if err != nil {
		t.Fatalf("SearchPages() error = %v", err)
	}

	if len(pages) != 0 {
		t.Errorf("expected no candidates, got %v", pages)
	}
}

func TestSearchPagesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	finder := &WebFinder{Cli: srv.Client()}

	if _, err := finder.searchAt(context.Background(), srv.URL, "1.0", "https://www.cvedetails.com"); err == nil {
		t.Error("expected error on non-200 search response")
	}
}

func TestResolveResultLink(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "redirect",
			href: "//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://www.exploit-db.com/exploits/50383"),
			want: "https://www.exploit-db.com/exploits/50383",
		},
		{
			name: "plain",
			href: "https://www.cvedetails.com/cve/CVE-2021-41773/",
			want: "https://www.cvedetails.com/cve/CVE-2021-41773/",
		},
		{
			name: "relative",
			href: "/settings",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveResultLink(tt.href); got != tt.want {
				t.Errorf("resolveResultLink() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWebFinderTimeout(t *testing.T) {
	finder := NewWebFinder(3 * time.Second)

	if finder.Cli.Timeout != 3*time.Second {
		t.Errorf("unexpected client timeout: %v", finder.Cli.Timeout)
	}
}
