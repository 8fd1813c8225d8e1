package report

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/vexfind/vexfind/config"
	"github.com/vexfind/vexfind/internal/exploitscan"

	"github.com/olekukonko/tablewriter"
)

// ResolveCorrelationData print the result of the correlation, one row
// per scanned service, in scan order.
func ResolveCorrelationData(ctx context.Context, records []exploitscan.Record) error {

	matched, unknown, failed := 0, 0, 0

	for _, r := range records {
		switch {
		case r.AdvisoryLink == config.LookupFailed:
			failed += 1
		case r.AdvisoryLink == config.Unknown && r.ExploitLink == config.Unknown:
			unknown += 1
		default:
			matched += 1
		}
	}

	fmt.Printf("\nCorrelated %s services | "+
		"Matched: %s Unknown: %s Failed: %s\n\n",
		config.Yellow(len(records)),
		config.Green(matched),
		config.Yellow(unknown),
		config.Red(failed))

	table := tablewriter.NewWriter(os.Stdout)

	table.SetHeader([]string{"Port", "Service Name", "Service Version", "Advisory", "Exploit"})
	table.SetRowLine(true)

	for _, r := range records {
		table.Append([]string{
			strconv.Itoa(r.PortNumber),
			r.ServiceName,
			r.ServiceVersion,
			judgeLink(r.AdvisoryLink),
			judgeLink(r.ExploitLink),
		})
	}

	table.Render()

	return nil
}

func judgeLink(link string) string {
	switch link {
	case config.Unknown:
		return config.Yellow(config.Unknown)
	case config.LookupFailed:
		return config.Red(config.LookupFailed)
	default:
		// ignore
	}
	return link
}
