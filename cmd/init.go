package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mjtb/licensure"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	start    string
	total    int
	direct   int
	months   int
	avg      float64
	data     string
	remote   string
	autoPush bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "set up the tracker configuration and data directory" }
func (*initCmd) Usage() string {
	return `hours init -start <tuesday> [-total n] [-direct n] [-months n] [-avg n] [-data <dir>] [-remote <url>]

  Writes the configuration file, creates the data directory with an empty
  ledger, and prepares it for git syncing. The start date must be a Tuesday,
  the first day of a tracking week.

Usage Examples:
$ hours init -start 2025-01-28 -total 3000 -direct 1200 -months 24 -avg 15
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day of the licensure period (a Tuesday, YYYY-MM-DD)")
	f.IntVar(&c.total, "total", 3000, "Total supervised hours goal")
	f.IntVar(&c.direct, "direct", 1200, "Direct client contact hours goal")
	f.IntVar(&c.months, "months", 24, "Minimum months of experience")
	f.Float64Var(&c.avg, "avg", 15, "Minimum average hours per week")
	f.StringVar(&c.data, "data", "~/hours", "Data directory holding hours.json")
	f.StringVar(&c.remote, "remote", "", "Git remote URL to push the data directory to")
	f.BoolVar(&c.autoPush, "auto-push", true, "Push after every commit")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" {
		fmt.Fprintln(os.Stderr, "Error: -start is required")
		return subcommands.ExitUsageError
	}

	cfg := &licensure.Config{
		Data: licensure.DataConfig{Directory: c.data},
		Git:  licensure.GitConfig{Remote: "origin", AutoPush: c.autoPush},
		Licensure: licensure.LicensureConfig{
			StartDate:         c.start,
			TotalHoursTarget:  c.total,
			DirectHoursTarget: c.direct,
			MinMonths:         c.months,
			MinWeeklyAverage:  c.avg,
		},
	}
	if _, err := cfg.Licensure.Target(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	path := *configFile
	if path == "" {
		path = licensure.ConfigPath()
	}
	if err := cfg.Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		return subcommands.ExitFailure
	}

	// Reload to apply the environment overrides before touching the data dir.
	cfg, err := licensure.LoadConfigFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading back config: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(cfg.DataDir(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := os.Stat(cfg.DataFile()); os.IsNotExist(err) {
		if err := licensure.Save(cfg.DataFile(), licensure.NewLedger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing empty ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if !*noGit && os.Getenv("HOURS_NO_GIT") != "1" {
		if err := licensure.GitInit(cfg.DataDir(), cfg.Git.Remote, c.remote); err != nil {
			fmt.Fprintf(os.Stderr, "Error preparing git repository: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := licensure.GitSync(cfg.DataDir(), cfg.Git, "Initialize hours ledger", *noGit); err != nil {
			fmt.Fprintf(os.Stderr, "Error committing initial ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Initialized. Config: %s. Data: %s.\n", path, cfg.DataFile())
	return subcommands.ExitSuccess
}
