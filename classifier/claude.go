package classifier

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	DefaultModel     = "claude-haiku-4-5-20251001"
	DefaultMaxTokens = 512
)

const systemPrompt = "You are an incident classification expert for a pedestrian safety service."

// Option configures a Claude classifier.
type Option func(*Claude)

// WithModel overrides the model ID.
func WithModel(model string) Option {
	return func(c *Claude) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Claude) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

// WithRequestOptions passes extra options to the SDK client, e.g. a base URL.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(c *Claude) {
		c.reqOpts = append(c.reqOpts, opts...)
	}
}

// Claude classifies transcripts with the Anthropic Messages API.
type Claude struct {
	client  sdk.Client
	model   string
	limiter *rate.Limiter
	reqOpts []option.RequestOption
}

func NewClaude(apiKey string, opts ...Option) *Claude {
	c := &Claude{
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, c.reqOpts...)...)
	return c
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(`Given this voice transcript:

"%s"

Classify it using the following categories:
%s

Respond in JSON format like this:
{ "CATEGORY1": confidence_score, "CATEGORY2": confidence_score, ... }

Only include categories relevant to the content.
Confidence score must be between 0.0 and 1.0.`, transcript, strings.Join(Categories, ", "))
}

func (c *Claude) Classify(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", eris.Wrap(ErrClassifier, "empty transcript")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "classifier: rate limit")
	}
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: DefaultMaxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(transcript))),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "classifier: create message")
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	log.Debugf("model response: %s", text.String())
	return parseCategory(text.String())
}
