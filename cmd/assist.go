package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/FrancisZamora/portfolio-wizard-hackathon/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	input string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask questions about a saved backtest" }
func (*assistCmd) Usage() string {
	return `pw assist [-input <file>] [question]

  Starts an interactive session with an AI analyst that answers questions
  about a saved backtest. Needs the GEMINI_API_KEY environment variable.

Usage Examples:
$ pw assist "did the strategy beat the benchmark?"

`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "backtest.csv", "backtest table to analyze")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(c.input))
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
