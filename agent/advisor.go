package agent

import (
	"context"
	"fmt"
	"sort"

	"github.com/mvezin/finstate"
	"github.com/mvezin/finstate/docs"
	"github.com/mvezin/finstate/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// newFacilitator creates the chat that fronts the user and delegates to the
// experts.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about each expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand their personal finances: balances, spending,
			budgets and saving goals. Ask the Advisor for the actual figures before
			answering, never invent amounts.

			Keep answers short and concrete, and format amounts the way the Advisor reports them.
		`}}},
		},
		Toolbox: NewToolbox(experts),
	}
}

// NewAdvisor creates the expert that reads the active user's profile. Its
// tools render the same markdown views the CLI shows.
func NewAdvisor(svc *finstate.Service) *Expert {
	tools := []Tool{
		dashboardTool(svc),
		budgetsTool(svc),
		goalsTool(svc),
		spendingTool(svc),
	}

	return &Expert{
		Name: "Advisor",
		Description: `This is the profile Advisor. It has read access to the active user's
		accounts, transactions, budgets, saving goals and notifications, and reports
		them as markdown tables.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal finance advisor with read access to the user's profile.
				Use the available tools to get the actual figures before answering:
				  - the dashboard for balances, alerts and recent activity
				  - budgets for limits, spending and alert thresholds
				  - goals for targets and progress
				  - spending for per-category totals
				Budget semantics, if you need them:

				` + must(docs.GetTopic("budgets"))}}},
		},
		Toolbox: NewToolbox(tools),
	}
}

// Func adapts a declaration and a closure into a Tool.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func output(id, name string, md string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": md},
	}
}

func dashboardTool(svc *finstate.Service) Tool {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard reports the active user's account balances, the budgets
			past their alert threshold, the five most recent transactions and the unread
			notification count.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown dashboard of the active user's profile.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := renderer.NewSummary(svc.Session().ActiveUser,
				svc.Accounts(), svc.Budgets(), svc.Transactions(), svc.Notifications())
			return output(id, "Dashboard", renderer.SummaryMarkdown(s))
		},
	}
}

func budgetsTool(svc *finstate.Service) Tool {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Budgets",
			Description: `Budgets lists every budget of the active user with its category, month, limit, spent amount and alert threshold.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the user's budgets.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "Budgets", renderer.Budgets(svc.Budgets()))
		},
	}
}

func goalsTool(svc *finstate.Service) Tool {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Goals",
			Description: `Goals lists every saving goal of the active user with its target, current amount and progress.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the user's saving goals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "Goals", renderer.Goals(svc.Goals()))
		},
	}
}

func spendingTool(svc *finstate.Service) Tool {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Spending",
			Description: `Spending totals the active user's transactions per category,
			optionally restricted to one category.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "Restrict totals to this category. All categories by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Per-category totals, one 'category: amount' line each.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs := svc.Transactions()
			var totals map[string]finstate.Money
			if category, ok := args["category"].(string); ok && category != "" {
				totals = finstate.CategoryTotals(txs, finstate.ByCategory(category))
			} else {
				totals = finstate.CategoryTotals(txs)
			}
			categories := make([]string, 0, len(totals))
			for category := range totals {
				categories = append(categories, category)
			}
			sort.Strings(categories)
			md := ""
			for _, category := range categories {
				md += fmt.Sprintf("%s: %s\n", category, totals[category])
			}
			if md == "" {
				md = "no transactions"
			}
			return output(id, "Spending", md)
		},
	}
}
