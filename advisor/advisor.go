// Package advisor is an interactive AI assistant that answers questions about
// a product portfolio. It grounds the model with function calls into the
// metrics engine, so figures in its answers come from computed metrics and not
// from the model's imagination.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/maycole/tracker"
	"github.com/maycole/tracker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w        io.Writer
	r        *bufio.Reader
	products []tracker.ProductMetrics
	library  Library
	chat     *genai.Chat
}

// New creates a new Advisor over the given products.
//
// It takes an io.Writer for the advisor's output (e.g., os.Stdout) and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, products []tracker.ProductMetrics) *Advisor {
	a := &Advisor{
		w:        w,
		r:        bufio.NewReader(r),
		products: products,
	}
	a.library = NewLibrary(a.functions())
	return a
}

// Start creates the chat session. The system instruction carries a one-line
// portfolio summary so the model knows what it is talking about before the
// first question.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	summary := renderer.SummaryText(tracker.AnalyzePortfolio(a.products))
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: NewDeclaration(a.functions())},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a business advisor for a small-business owner tracking inventory.
		Answer questions about products, profitability and cost savings.

		Use the available tools to get real figures about the portfolio, never
		invent numbers. Keep answers short and practical, the user is a busy
		shop owner, not a financial analyst.

		Current portfolio: ` + summary}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends parts to the model and resolves function calls until a text
// response comes back.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from advisor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.library(ctx, part0.FunctionCall)
		// Ask again with the response the model asked for, until we have
		// a real answer.
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

const prompt = "advisor> "

// Run starts the interactive REPL session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the mct business advisor. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
