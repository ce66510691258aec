package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIClient generates the optional one-line digest summary. The
// pipeline works without it; any failure here falls back to the
// templated sentence.
type OpenAIClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (c *OpenAIClient) SummarizeTrending(ctx context.Context, league string, trending []models.ScoredArticle) (string, error) {
	if len(trending) == 0 {
		return "", nil
	}

	prompt := c.buildSummaryPrompt(league, trending)

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You write one-sentence sports merchandising briefs. Plain text, no markup, under 25 words."),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(60),
	})

	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	summary := strings.TrimSpace(response.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty summary from openai")
	}

	return summary, nil
}

func (c *OpenAIClient) buildSummaryPrompt(league string, trending []models.ScoredArticle) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize the merchandising outlook from these %s headlines in one sentence:\n\n", league))
	for i, a := range trending {
		sb.WriteString(fmt.Sprintf("%d. [%s/%s] %s\n", i+1, a.Category, a.Heat, a.Title))
	}
	return sb.String()
}
