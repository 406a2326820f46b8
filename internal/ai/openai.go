package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	altai "github.com/sashabaranov/go-openai"

	"jseq/internal/model"
	"jseq/internal/util"
)

// Minimal client wrapper around the chat completion API.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{apiKey: apiKey, baseURL: baseURL, model: model, timeout: timeout}
}

// Explain asks the model to narrate the inferred request/response sequence.
// Raw snippet text is redacted before leaving the process.
func (c *OpenAIClient) Explain(ctx context.Context, entries []model.LogEntry, groups []model.TableGroup) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", errors.New("openai disabled")
	}
	prompt := buildExplainPrompt(entries, groups)
	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.call(ctx2, prompt)
}

func (c *OpenAIClient) call(ctx context.Context, prompt string) (string, error) {
	cfg := altai.DefaultConfig(c.apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cli := altai.NewClientWithConfig(cfg)
	resp, err := cli.CreateChatCompletion(ctx, altai.ChatCompletionRequest{
		Model: c.model,
		Messages: []altai.ChatCompletionMessage{
			{Role: altai.ChatMessageRoleSystem, Content: "You analyze request/response journal sequences. Answer with short plain prose: what happened in what order, and anything that looks off (missing responses, out-of-order pairs, unparsed timestamps). No markdown."},
			{Role: altai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildExplainPrompt(entries []model.LogEntry, groups []model.TableGroup) string {
	var b strings.Builder
	b.WriteString("Journal entries with their global chronological ranks (1-based over all request and response events):\n")
	for _, e := range entries {
		b.WriteString("- ")
		b.WriteString(util.RedactPII(e.FirstColumn))
		if e.RequestNumber > 0 {
			fmt.Fprintf(&b, " req#%d@%s", e.RequestNumber, e.RequestTS.Format("15:04:05.000"))
		} else if e.HasRequest {
			b.WriteString(" req#?(no timestamp)")
		}
		if e.ResponseNumber > 0 {
			fmt.Fprintf(&b, " resp#%d@%s", e.ResponseNumber, e.ResponseTS.Format("15:04:05.000"))
		} else if e.HasResponse {
			b.WriteString(" resp#?(no timestamp)")
		}
		b.WriteByte('\n')
	}
	b.WriteString("Groups by overlapping rank ranges:\n")
	for i, g := range groups {
		fmt.Fprintf(&b, "- group %d [%d-%d]: %d entries\n", i+1, g.MinNumber, g.MaxNumber, len(g.Entries))
	}
	b.WriteString("Explain the sequence briefly.")
	return b.String()
}
