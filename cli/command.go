package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vexfind/vexfind/config"
	"github.com/vexfind/vexfind/internal"
	"github.com/spf13/cobra"
)

var versions = "v0.1.0"

var (
	rootCmd = &cobra.Command{
		Use:   "vexfind [OPTIONS]",
		Short: "Correlate scanned services with advisories and exploits",
		Long: `VexFind takes the port scanner's report and finds, per detected service,
the best matching vulnerability advisory and a ready exploit reference`,
	}

	scanFile    string
	confFile    string
	outfile     string
	concurrency int
	timeout     int
)

func Execute() error {
	correlateCmd := &cobra.Command{
		Use:   "correlate",
		Short: `Correlate a scan result file`,
		Long: `Examples:
  # Correlate a scan result
  $ vexfind correlate -f scan.json

  # Correlate with a specific output location
  $ vexfind correlate -f scan.json -o report.json

  # Correlate with a config file and a wider pool
  $ vexfind correlate -f scan.json --config vexfind.yaml --concurrency 10`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Ctx
			ctx = context.WithValue(ctx, "output", outfile)
			ctx = context.WithValue(ctx, "config", confFile)
			ctx = context.WithValue(ctx, "concurrency", concurrency)
			ctx = context.WithValue(ctx, "timeout", timeout)

			if scanFile == "" {
				log.Printf("Cannot get the scan result. " +
					"Use -f to point at the scanner's JSON report")
				os.Exit(1)
			}

			internal.DoCorrelate(ctx, scanFile)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and quit",
		Args:  NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versions)
		},
	}

	correlateCmd.Flags().StringVarP(&scanFile, "file", "f", "", "path of the scan result file")
	correlateCmd.Flags().StringVarP(&outfile, "output", "o", "output", "output file location")
	correlateCmd.Flags().StringVar(&confFile, "config", "", "path of the config file")
	correlateCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of services correlated at once")
	correlateCmd.Flags().IntVar(&timeout, "timeout", 0, "request timeout in seconds")

	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd.Execute()
}
