package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure"
	"github.com/mjtb/licensure/date"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	week     string
	category string
	hours    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add hours to a tracking week" }
func (*addCmd) Usage() string {
	return `hours add [-week <date>] -category <category> -hours <n>

  Accumulates hours onto a category of a tracking week. Any date inside the
  week selects it; without -week, hours land in the current week. A negative
  amount backs out a mistaken add, as long as no category ends up below
  zero.

Usage Examples:
$ hours add -category direct -hours 2.5
$ hours add -week 2025-01-28 -category individual_supervision -hours 1
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "week", "", "A date inside the target week (defaults to today)")
	f.StringVar(&c.category, "category", "", "Category token (individual_supervision, group_supervision, direct, indirect)")
	f.StringVar(&c.hours, "hours", "", "Hours to add, decimal")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	week, cat, hours, status := parseEntryFlags(c.week, c.category, c.hours)
	if status != subcommands.ExitSuccess {
		return status
	}

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

	ledger.UpsertWeek(week).Add(cat, hours)

	message := fmt.Sprintf("Add %s %s hours for week of %s", hours, cat, week)
	if err := saveLedger(cfg, ledger, message); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %s hours to week of %s.\n", hours, cat, week)
	return subcommands.ExitSuccess
}

// parseEntryFlags validates the week/category/hours flag triple shared by the
// add and edit subcommands.
func parseEntryFlags(weekFlag, categoryFlag, hoursFlag string) (date.Date, licensure.Category, decimal.Decimal, subcommands.ExitStatus) {
	fail := func(format string, args ...any) (date.Date, licensure.Category, decimal.Decimal, subcommands.ExitStatus) {
		fmt.Fprintf(os.Stderr, format, args...)
		return date.Date{}, 0, decimal.Zero, subcommands.ExitUsageError
	}

	if categoryFlag == "" {
		return fail("Error: -category is required\n")
	}
	cat, err := licensure.ParseCategory(categoryFlag)
	if err != nil {
		return fail("Error: %v\n", err)
	}

	if hoursFlag == "" {
		return fail("Error: -hours is required\n")
	}
	hours, err := decimal.NewFromString(hoursFlag)
	if err != nil {
		return fail("Error: invalid -hours %q\n", hoursFlag)
	}

	day := date.Today()
	if weekFlag != "" {
		day, err = date.Parse(weekFlag)
		if err != nil {
			return fail("Error: invalid -week %q: %v\n", weekFlag, err)
		}
	}

	return date.WeekOf(day).Start, cat, hours, subcommands.ExitSuccess
}
