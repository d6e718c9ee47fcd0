package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/lumelab/focuswatch/internal/domain/analysis"
	"github.com/lumelab/focuswatch/internal/infra/ai/prompt"
)

const (
	defaultModel  = "gpt-4o-mini"
	credentialEnv = "OPENAI_API_KEY"
	maxTokens     = 512
)

// Client classifies frames with the OpenAI vision API. The underlying
// handle is built lazily on first use so a missing credential surfaces
// as a per-call error instead of a startup crash, and every later call
// fails the same way.
type Client struct {
	Model string

	once    sync.Once
	api     *openai.Client
	initErr error
}

func NewClient(model string) *Client {
	return &Client{Model: model}
}

// handle returns the memoized API client. The credential env var is
// read exactly once per process.
func (c *Client) handle() (*openai.Client, error) {
	c.once.Do(func() {
		key := strings.TrimSpace(os.Getenv(credentialEnv))
		if key == "" {
			c.initErr = fmt.Errorf("%w: %s is not set", analysis.ErrCredentialMissing, credentialEnv)
			return
		}
		c.api = openai.NewClient(key)
	})
	return c.api, c.initErr
}

// Classify sends one JPEG-tagged frame to the model and decodes the
// schema-constrained verdict. Single attempt, no retry, no timeout of
// its own; cancellation is whatever ctx carries.
func (c *Client) Classify(ctx context.Context, jpegBase64 string) (analysis.Result, error) {
	api, err := c.handle()
	if err != nil {
		return analysis.Result{}, err
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}

	schema := prompt.ResponseSchema()

	req := openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "focus_verdict",
				Schema: &schema,
				Strict: true,
			},
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.GetUserPrompt()},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    "data:image/jpeg;base64," + jpegBase64,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}

	resp, err := api.CreateChatCompletion(ctx, req)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return analysis.Result{}, analysis.ErrEmptyResponse
	}

	var res analysis.Result
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &res); err != nil {
		return analysis.Result{}, fmt.Errorf("failed to parse model verdict: %w", err)
	}
	return res, nil
}
