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

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	week   string
	fields map[licensure.Category]*string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "overwrite the hours of a week" }
func (*editCmd) Usage() string {
	return `hours edit [-week <date>] [-individual-supervision n] [-group-supervision n] [-direct n] [-indirect n]

  Sets the given categories of a week to exact values, replacing whatever was
  logged before. Categories without a flag are left alone. Use it to correct
  a mistyped add.

Usage Examples:
$ hours edit -week 2025-01-28 -direct 4
$ hours edit -week 2025-01-28 -individual-supervision 1 -indirect 0
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "week", "", "A date inside the target week (defaults to today)")
	c.fields = map[licensure.Category]*string{
		licensure.IndividualSupervision: f.String("individual-supervision", "", "New individual supervision hours"),
		licensure.GroupSupervision:      f.String("group-supervision", "", "New group supervision hours"),
		licensure.Direct:                f.String("direct", "", "New direct client contact hours"),
		licensure.Indirect:              f.String("indirect", "", "New indirect hours"),
	}
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.week != "" {
		var err error
		day, err = date.Parse(c.week)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -week %q: %v\n", c.week, err)
			return subcommands.ExitUsageError
		}
	}
	week := date.WeekOf(day).Start

	values := make(map[licensure.Category]decimal.Decimal)
	for _, cat := range licensure.Categories {
		raw := *c.fields[cat]
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -%s %q\n", flagName(cat), raw)
			return subcommands.ExitUsageError
		}
		values[cat] = v
	}
	if len(values) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to edit, pass at least one category flag")
		return subcommands.ExitUsageError
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

	entry := ledger.UpsertWeek(week)
	for _, cat := range licensure.Categories {
		if v, ok := values[cat]; ok {
			entry.Set(cat, v)
		}
	}

	message := fmt.Sprintf("Edit week of %s", week)
	if err := saveLedger(cfg, ledger, message); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, cat := range licensure.Categories {
		if v, ok := values[cat]; ok {
			fmt.Printf("Set %s to %s hours for week of %s.\n", cat, v, week)
		}
	}
	return subcommands.ExitSuccess
}

// flagName maps a category to its flag spelling (underscores become dashes).
func flagName(c licensure.Category) string {
	switch c {
	case licensure.IndividualSupervision:
		return "individual-supervision"
	case licensure.GroupSupervision:
		return "group-supervision"
	default:
		return c.String()
	}
}
