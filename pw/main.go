// Command pw is the portfolio wizard CLI: backtest long/short portfolios,
// simulate fixed-growth trajectories, and chart market heatmaps.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer declares the shell completion tree. Install it with
// COMP_INSTALL=1 pw.
var completer = &complete.Command{
	Sub: map[string]*complete.Command{
		"backtest": {Flags: map[string]complete.Predictor{
			"long": predict.Something, "short": predict.Something,
			"long-weights": predict.Something, "short-weights": predict.Something,
			"benchmark": predict.Something,
			"from":      predict.Something, "to": predict.Something,
			"output": predict.Files("*"),
		}},
		"simulate": {Flags: map[string]complete.Predictor{
			"ticker": predict.Something, "rate": predict.Something,
			"from": predict.Something, "to": predict.Something,
			"output": predict.Files("*"), "base64": predict.Nothing,
		}},
		"heatmap": {Flags: map[string]complete.Predictor{
			"tickers": predict.Something,
			"from":    predict.Something, "to": predict.Something,
			"input": predict.Files("*.csv"), "output": predict.Files("*.png"),
			"width": predict.Something, "height": predict.Something,
		}},
		"assist": {Flags: map[string]complete.Predictor{
			"input": predict.Files("*.csv"),
		}},
		"topic": {Args: predict.Set{"backtest", "simulate", "heatmap", "assist", "readme", "*"}},
		"help":  {},
	},
}

func main() {
	completer.Complete("pw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
