package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/maycole/tracker"
	"github.com/maycole/tracker/renderer"
	"google.golang.org/genai"
)

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// functions builds the tool library exposed to the model, bound to the
// advisor's product list.
func (a *Advisor) functions() []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Portfolio",
				Description: "Computes the aggregate metrics of the whole portfolio: totals, overall ROI, average margin, and the top and under performing products.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted portfolio summary.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				m := tracker.AnalyzePortfolio(a.products)
				return okResponse(id, "Portfolio", renderer.PortfolioMarkdown(m))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "AnalyzeProduct",
				Description: "Computes the detailed metrics of a single product: ROI, profit margin, per-unit figures, inventory turnover, business impact and recommendations.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "The product name, matched case-insensitively.",
						},
					},
					Required: []string{"name"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted product analysis.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				arg0 := args["name"]
				name, ok := arg0.(string)
				if !ok {
					return errResponse(id, "AnalyzeProduct", fmt.Errorf("argument 'name' is not a string as expected but %T", arg0))
				}
				product, err := a.find(name)
				if err != nil {
					return errResponse(id, "AnalyzeProduct", err)
				}
				calc := tracker.AnalyzeProduct(product)
				return okResponse(id, "AnalyzeProduct", renderer.AnalysisMarkdown(product, calc))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "CostSavings",
				Description: "Scans the portfolio for cost-saving opportunities: products with poor sourcing terms or excess slow-moving inventory.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted list of saving opportunities with the total potential savings.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				s := tracker.CalculateCostSavings(a.products)
				return okResponse(id, "CostSavings", renderer.SavingsMarkdown(s))
			},
		},
	}
}

// find returns the product matching name, case-insensitively. When nothing
// matches, the error lists the known names so the model can self-correct.
func (a *Advisor) find(name string) (tracker.ProductMetrics, error) {
	var known []string
	for _, p := range a.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
		known = append(known, p.Name)
	}
	return tracker.ProductMetrics{}, fmt.Errorf("unknown product %q, known products: %s", name, strings.Join(known, ", "))
}
