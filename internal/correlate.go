package internal

import (
	"context"
	"log"
	"time"

	"github.com/vexfind/vexfind/config"
	"github.com/vexfind/vexfind/internal/exploitscan"
	"github.com/vexfind/vexfind/internal/report"
	"github.com/vexfind/vexfind/pkg/advisory"
	"github.com/vexfind/vexfind/pkg/exploitref"
	"github.com/vexfind/vexfind/pkg/scanfile"
	"github.com/vexfind/vexfind/pkg/sitefinder"
)

// DoCorrelate runs the whole pipeline: load the scan result, look up
// advisories and exploits per service, then render and save the report.
func DoCorrelate(ctx context.Context, scanFile string) {

	conf, err := config.Load(ctx.Value("config").(string))
	if err != nil {
		log.Printf("failed to read config, using defaults, error: %v", err)
	}

	if n := ctx.Value("concurrency").(int); n > 0 {
		conf.Concurrency = n
	}
	if t := ctx.Value("timeout").(int); t > 0 {
		conf.Timeout = t
	}

	services, err := scanfile.ParseFile(scanFile)
	if err != nil {
		log.Printf("failed to load scan result %s, error: %v", scanFile, err)
		return
	}

	log.Printf(config.Green("Begin to correlate %d services"), len(services))

	timeout := time.Duration(conf.Timeout) * time.Second
	finder := sitefinder.NewWebFinder(timeout)

	correlator := &exploitscan.Correlator{
		Advisory:    advisory.NewSearcher(finder, conf.AdvisorySite, timeout),
		Exploit:     exploitref.NewSearcher(finder, conf.ExploitSite),
		Concurrency: conf.Concurrency,
	}

	records := correlator.Merge(ctx, services)

	err = report.ResolveCorrelationData(ctx, records)
	if err != nil {
		log.Printf("report error %v", err)
	}

	err = report.CorrelationToJson(ctx, records)
	if err != nil {
		log.Printf("saving error %v", err)
	}
}
