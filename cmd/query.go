package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query against the ledger document" }
func (*queryCmd) Usage() string {
	return `hours query <jsonpath>

  Evaluates a JSONPath expression against the ledger document and prints the
  result as JSON. Handy for scripting without parsing the table output.

Usage Examples:
$ hours query '$.weeks[*].direct'
$ hours query '$.weeks[?(@.start=="2025-01-28")]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	raw, err := os.ReadFile(cfg.DataFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(path, document)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}
