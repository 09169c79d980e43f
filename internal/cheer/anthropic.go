package cheer

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

const systemPrompt = `You write one-line encouragements for a child
practicing mental arithmetic in a terminal app. One sentence, under 12
words, warm but not saccharine, no exclamation marks doubled, no emoji.
Never mention scores the child did not earn.`

// AnthropicProvider implements Provider using the Anthropic SDK.
type AnthropicProvider struct {
	client *anthropic.Client
	cfg    Config
	model  string
}

// NewAnthropicProvider creates a provider from an API key and config.
func NewAnthropicProvider(apiKey string, cfg Config) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	model := cfg.Model
	if id, ok := anthropicModels[model]; ok {
		model = id
	}

	return &AnthropicProvider{client: &client, cfg: cfg, model: model}, nil
}

func (p *AnthropicProvider) Cheer(ctx context.Context, in Input) (string, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(p.cfg.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(buildUserMessage(in)),
				},
			},
		},
	}
	if p.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(p.cfg.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("cheer generation: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

func buildUserMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Moment: %s.\n", in.Moment)
	if in.PlayerName != "" {
		fmt.Fprintf(&b, "Child's name: %s.\n", in.PlayerName)
	}
	if in.Answered > 0 {
		fmt.Fprintf(&b, "Answered %d problems, %d correct.\n", in.Answered, in.Correct)
	}
	if in.PartCount > 0 {
		fmt.Fprintf(&b, "Just finished part %d of %d.\n", in.PartNumber, in.PartCount)
	}
	b.WriteString("Write the encouragement line.")
	return b.String()
}
