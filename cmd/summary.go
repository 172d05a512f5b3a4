package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mjtb/licensure"
	"github.com/mjtb/licensure/date"
	"github.com/mjtb/licensure/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	json bool
	on   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display licensure progress against the goals" }
func (*summaryCmd) Usage() string {
	return `hours summary [-d <date>] [-json]

  Measures the ledger against the configured licensure goals: total and
  direct hours, months of experience, and the weekly average.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Day to measure progress on (defaults to today)")
	f.BoolVar(&c.json, "json", false, "Print the progress figures as JSON")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	target, err := cfg.Licensure.Target()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	asOf := date.Today()
	if c.on != "" {
		asOf, err = date.Parse(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -d %q: %v\n", c.on, err)
			return subcommands.ExitUsageError
		}
	}

	progress := licensure.ComputeProgress(ledger, target, asOf)

	if c.json {
		b, err := json.MarshalIndent(progress, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error serializing progress: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(progress, asOf)))
	return subcommands.ExitSuccess
}
