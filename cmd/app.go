// Package cmd implements the CLI application to track licensure hours.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"

	"github.com/mjtb/licensure"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&addCmd{},
	&editCmd{},
	&listCmd{},
	&summaryCmd{},
	&exportCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file (defaults to the user config directory)")
var noGit = flag.Bool("no-git", false, "Disable git commit and push after saves")

// loadConfig reads the configuration, honoring the global -config flag.
func loadConfig() (*licensure.Config, error) {
	if *configFile != "" {
		return licensure.LoadConfigFrom(*configFile)
	}
	return licensure.LoadConfig()
}

// loadLedger reads the ledger from the configured data file. A missing file
// is an empty ledger, not an error, so the first add just works.
func loadLedger(cfg *licensure.Config) (*licensure.Ledger, error) {
	l, err := licensure.Load(cfg.DataFile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting an empty ledger")
		return licensure.NewLedger(), nil
	}
	return l, err
}

// saveLedger validates and writes the ledger, then syncs the data directory
// through git with the given change description.
func saveLedger(cfg *licensure.Config, l *licensure.Ledger, message string) error {
	if err := licensure.Save(cfg.DataFile(), l); err != nil {
		return err
	}
	return licensure.GitSync(cfg.DataDir(), cfg.Git, message, *noGit)
}

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal the raw markdown is printed instead, so piped output stays clean.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
