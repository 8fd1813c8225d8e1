package exploitref

import (
	"context"

	"github.com/vexfind/vexfind/pkg/sitefinder"
	"github.com/vexfind/vexfind/pkg/vertoken"
)

// Searcher finds pages with ready exploit code for one service version.
// The finder's ranking is trusted as-is; the caller takes the first
// candidate, so no further disambiguation happens here.
type Searcher struct {
	Finder sitefinder.Finder

	// Site is the exploit reference domain, e.g. https://www.exploit-db.com
	Site string
}

func NewSearcher(finder sitefinder.Finder, site string) *Searcher {
	return &Searcher{
		Finder: finder,
		Site:   site,
	}
}

// Find returns the ordered exploit candidate URLs, possibly none.
func (s *Searcher) Find(ctx context.Context, serviceVersion string) ([]string, error) {
	return s.Finder.SearchPages(ctx, vertoken.Canonical(serviceVersion), s.Site)
}
