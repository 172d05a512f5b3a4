package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mjtb/licensure"
	"github.com/mjtb/licensure/date"
	"github.com/mjtb/licensure/renderer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full report to a file" }
func (*exportCmd) Usage() string {
	return `hours export [-o <file>] [-format markdown|html]

  Writes the full report, progress summary plus the complete week table, to a
  file or to stdout. The html format is self-contained and ready to hand to a
  supervisor or licensure board.

Usage Examples:
$ hours export -o report.md
$ hours export -format html -o report.html
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
	f.StringVar(&c.format, "format", "markdown", "Output format: markdown or html")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "markdown" && c.format != "html" {
		fmt.Fprintf(os.Stderr, "Error: unknown -format %q, want markdown or html\n", c.format)
		return subcommands.ExitUsageError
	}

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
	progress := licensure.ComputeProgress(ledger, target, asOf)
	report := renderer.RenderReport(renderer.NewReport(progress, ledger.Weeks(), asOf))

	content := []byte(report)
	if c.format == "html" {
		content, err = markdownToHTML(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting to html: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.output == "" {
		os.Stdout.Write(content)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s.\n", c.output)
	return subcommands.ExitSuccess
}

// markdownToHTML converts the report markdown into a standalone HTML page.
// Tables come from the GFM extension; base markdown has none.
func markdownToHTML(source string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(source), &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Licensure Hours Report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
