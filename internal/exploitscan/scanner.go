package exploitscan

import (
	"context"

	"github.com/vexfind/vexfind/pkg/scanfile"
)

// searcher is the shape both lookup branches share: given a service
// version, return candidate URLs in relevance order.
type searcher interface {
	Find(ctx context.Context, serviceVersion string) ([]string, error)
}

// Correlator pairs every scanned service with the best advisory and
// exploit reference found on the external sources.
type Correlator struct {
	Advisory searcher
	Exploit  searcher

	// Concurrency bounds the number of services correlated at once
	Concurrency int
}

// Record is one row of the final report: the scanner's finding plus
// the two discovered links. A record has no identity beyond its
// position, which always equals the input position of its service.
type Record struct {
	scanfile.Service

	AdvisoryLink string `json:"advisory_link"`
	ExploitLink  string `json:"exploit_link"`
}

// pair carries the raw outcome of both branches of one correlation.
type pair struct {
	advisories []string
	exploits   []string

	advisoryErr error
	exploitErr  error
}
