package agent

import (
	"context"
	"fmt"
	"os"

	wizard "github.com/FrancisZamora/portfolio-wizard-hackathon"
	"github.com/FrancisZamora/portfolio-wizard-hackathon/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst returns the expert behind `pw assist`: a performance analyst
// that can re-read the saved backtest table through its tool library.
func NewAnalyst(resultFile string) *Expert {
	lib := []Function{newBacktestReview(resultFile)}
	return &Expert{
		Name: "Analyst",
		Description: `A portfolio performance analyst. It reads the saved
		backtest returns and explains how the strategy did against its
		benchmark.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio performance analyst. The user ran a backtest of a
			long/short strategy against a benchmark index, and you answer questions
			about that run.

			Use the BacktestReview tool to read the actual numbers before answering.
			Returns are cumulative and expressed in percent. Be concrete: quote the
			final strategy and benchmark returns when comparing them, and say
			plainly which one did better. Do not give investment advice.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// newBacktestReview builds the tool that loads and renders the saved
// backtest table on demand.
func newBacktestReview(resultFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "BacktestReview",
			Description: `BacktestReview reads the saved backtest returns table and
			renders it as a markdown review: number of trading days, final
			cumulative strategy and benchmark returns, and their difference.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown review of the backtest run.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "BacktestReview"}
			review, err := backtestReview(resultFile)
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": review}
			return fresp
		},
	}
}

func backtestReview(resultFile string) (string, error) {
	f, err := os.Open(resultFile)
	if err != nil {
		return "", fmt.Errorf("could not open backtest file %q: %w", resultFile, err)
	}
	defer f.Close()
	res, err := wizard.ReadResultCSV(f)
	if err != nil {
		return "", fmt.Errorf("could not read backtest file %q: %w", resultFile, err)
	}
	return renderer.BacktestMarkdown(res), nil
}
