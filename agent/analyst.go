package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Tools are the capabilities the analyst can invoke. Each returns a
// markdown document, the same ones the CLI prints.
type Tools struct {
	// Dashboard renders the current family dashboard.
	Dashboard func() (string, error)
	// History renders the recorded asset history.
	History func() (string, error)
	// News fetches headlines for a query.
	News func(query string) (string, error)
}

// NewAnalyst creates the portfolio analyst expert wired to the tools.
func NewAnalyst(tools Tools) *Expert {
	lib := []Function{
		markdownTool("Dashboard",
			`Dashboard renders the family's current portfolio dashboard: every
			member's holdings valued at the latest market price, with market
			value, cost, unrealized profit and loss, return ratio and the
			dividends received this year, plus the family-wide totals.`,
			nil,
			func(ctx context.Context, args map[string]any) (string, error) { return tools.Dashboard() }),
		markdownTool("History",
			`History renders the recorded daily asset values: one column per
			family member plus the family total, one row per recorded day.
			Use it for questions about how the wealth evolved over time.`,
			nil,
			func(ctx context.Context, args map[string]any) (string, error) { return tools.History() }),
		markdownTool("News",
			`News fetches the latest financial headlines for a search query.
			Default the query to the Taiwanese stock market when the user does
			not name a topic.`,
			map[string]*genai.Schema{
				"query": {
					Type:        genai.TypeString,
					Description: "The news search query, e.g. a company name or a market topic.",
				},
			},
			func(ctx context.Context, args map[string]any) (string, error) {
				query, _ := args["query"].(string)
				return tools.News(query)
			}),
	}

	return &Expert{
		Name:  "Analyst",
		Model: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the family's portfolio analyst. The user asks about their
			holdings, their value, their returns, their dividends and related
			market news.

			Use the available tools to ground every figure you give:
			  - Dashboard for the current valuation of every member's holdings
			  - History for how the family's asset value evolved
			  - News for recent headlines

			Answer in the language the user writes in. Keep answers short and
			concrete, quote the figures from the tools rather than estimating.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// markdownTool wraps a callback returning markdown into a Function.
func markdownTool(name, description string, params map[string]*genai.Schema, fn func(ctx context.Context, args map[string]any) (string, error)) Function {
	decl := &genai.FunctionDeclaration{
		Name:        name,
		Description: description,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted document.",
		},
	}
	if len(params) > 0 {
		decl.Parameters = &genai.Schema{Type: genai.TypeObject, Properties: params}
	}
	return &Func{
		Decl: decl,
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name}
			output, err := fn(ctx, args)
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": output}
			return fresp
		},
	}
}
