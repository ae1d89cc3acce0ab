package llm

import (
	"context"
	"fmt"
	"strings"

	llmprovider "github.com/haowjy/meridian-llm-go"
)

// ProviderGenerator adapts an llmprovider.Provider (Anthropic, lorem) to the
// Generator interface. It collapses the block-structured request/response
// shape to plain text: one user message whose single text block carries the
// framing and the task, and a response assembled from the text blocks.
type ProviderGenerator struct {
	provider llmprovider.Provider
	model    string
}

// NewProviderGenerator wraps a library provider for a fixed model
func NewProviderGenerator(provider llmprovider.Provider, model string) (*ProviderGenerator, error) {
	if !provider.SupportsModel(model) {
		return nil, fmt.Errorf("provider %s does not support model %s", provider.Name().String(), model)
	}
	return &ProviderGenerator{provider: provider, model: model}, nil
}

func (g *ProviderGenerator) Name() string {
	return g.provider.Name().String()
}

func (g *ProviderGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text := userPrompt
	if systemPrompt != "" {
		text = systemPrompt + "\n\n" + userPrompt
	}

	req := &llmprovider.GenerateRequest{
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Blocks: []*llmprovider.Block{
					{
						BlockType:   "text",
						Sequence:    0,
						TextContent: &text,
					},
				},
			},
		},
		Model: g.model,
	}

	resp, err := g.provider.GenerateResponse(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generating response: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Blocks {
		if block.BlockType == "text" && block.TextContent != nil {
			sb.WriteString(*block.TextContent)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", &RequestError{Provider: g.Name(), Message: "response contained no text"}
	}
	return out, nil
}
