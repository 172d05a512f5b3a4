package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mjtb/licensure/cmd"
)

func main() {
	// Handles shell completion requests and exits when one is in flight.
	completion().Complete("hours")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	categories := predict.Set{"individual_supervision", "group_supervision", "direct", "indirect"}
	entryFlags := map[string]complete.Predictor{
		"week":     predict.Something,
		"category": categories,
		"hours":    predict.Something,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"no-git": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init": {Flags: map[string]complete.Predictor{
				"start":     predict.Something,
				"total":     predict.Something,
				"direct":    predict.Something,
				"months":    predict.Something,
				"avg":       predict.Something,
				"data":      predict.Dirs("*"),
				"remote":    predict.Something,
				"auto-push": predict.Nothing,
			}},
			"add": {Flags: entryFlags},
			"edit": {Flags: map[string]complete.Predictor{
				"week":                   predict.Something,
				"individual-supervision": predict.Something,
				"group-supervision":      predict.Something,
				"direct":                 predict.Something,
				"indirect":               predict.Something,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"json": predict.Nothing,
				"last": predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"d":    predict.Something,
				"json": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"o":      predict.Files("*"),
				"format": predict.Set{"markdown", "html"},
			}},
			"fmt":   {},
			"query": {},
			"topic": {Args: predict.Set{"quickstart", "categories", "weeks", "config", "file-format", "readme"}},
		},
	}
}
