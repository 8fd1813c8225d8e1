package exploitscan

import (
	"context"
	"log"
	"sync"

	"github.com/vexfind/vexfind/config"
	"github.com/vexfind/vexfind/pkg/scanfile"
)

const defaultConcurrency = 5

// Merge correlates every scanned service and returns one record per
// service, at the same index. Services run through a bounded pool, so
// slow lookups overlap across services, but the output slice is
// addressed by input index and the emission order never changes.
func (c *Correlator) Merge(ctx context.Context, services []scanfile.Service) []Record {

	records := make([]Record, len(services))

	limit := c.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, service := range services {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s scanfile.Service) {
			defer wg.Done()
			defer func() { <-sem }()

			records[i] = c.correlateService(ctx, s)
		}(i, service)
	}

	wg.Wait()

	return records
}

// correlateService builds the record for one service. Services without
// a detected version skip both lookups entirely.
func (c *Correlator) correlateService(ctx context.Context, s scanfile.Service) Record {
	record := Record{
		Service:      s,
		AdvisoryLink: config.Unknown,
		ExploitLink:  config.Unknown,
	}

	if s.ServiceVersion == config.Unknown {
		return record
	}

	p := c.correlate(ctx, s.ServiceVersion)

	if p.advisoryErr != nil {
		// A failed advisory fetch degrades this record only, the
		// rest of the report is unaffected
		log.Printf("advisory lookup for %s %s failed: %v",
			s.ServiceName, s.ServiceVersion, p.advisoryErr)
		record.AdvisoryLink = config.LookupFailed
	} else if len(p.advisories) > 0 {
		record.AdvisoryLink = p.advisories[0]
	}

	if p.exploitErr != nil {
		log.Printf("exploit lookup for %s %s failed: %v",
			s.ServiceName, s.ServiceVersion, p.exploitErr)
	} else if len(p.exploits) > 0 {
		record.ExploitLink = p.exploits[0]
	}

	return record
}

// correlate runs both searches concurrently and waits for both, even
// when one branch is slow or fails.
func (c *Correlator) correlate(ctx context.Context, serviceVersion string) pair {
	var p pair
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		p.advisories, p.advisoryErr = c.Advisory.Find(ctx, serviceVersion)
	}()

	go func() {
		defer wg.Done()
		p.exploits, p.exploitErr = c.Exploit.Find(ctx, serviceVersion)
	}()

	wg.Wait()

	return p
}
