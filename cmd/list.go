package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mjtb/licensure"
	"github.com/mjtb/licensure/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	json bool
	last int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the logged weeks" }
func (*listCmd) Usage() string {
	return `hours list [-json] [-last n]

  Displays the logged weeks as a table, oldest first, with per-category and
  overall totals. -json prints the raw ledger document instead.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the raw ledger document")
	f.IntVar(&c.last, "last", 0, "Only show the most recent n weeks")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	weeks := ledger.Weeks()
	if c.last > 0 && len(weeks) > c.last {
		weeks = weeks[len(weeks)-c.last:]
	}

	if c.json {
		if weeks == nil {
			weeks = []licensure.WeekEntry{}
		}
		out := struct {
			Weeks []licensure.WeekEntry `json:"weeks"`
		}{weeks}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error serializing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderWeekList(renderer.NewWeekList("Logged Weeks", weeks)))
	return subcommands.ExitSuccess
}
