package llm

import (
	"context"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const DefaultAPIKeyEnv = "OPENAI_API_KEY"

type Config struct {
	APIKeyEnv   string
	BaseURL     string
	Model       string
	Temperature float32
}

type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	log         logrus.FieldLogger
}

func NewOpenAIClient(cfg Config, log logrus.FieldLogger) (*OpenAIClient, error) {
	envName := cfg.APIKeyEnv
	if envName == "" {
		envName = DefaultAPIKeyEnv
	}
	apiKey := os.Getenv(envName)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", envName)
	}

	oc := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		temperature: cfg.Temperature,
		log:         log,
	}, nil
}

// Complete sends the system instruction and one user message per turn, and
// returns the first choice verbatim.
func (c *OpenAIClient) Complete(ctx context.Context, prompt Prompt, maxTokens int) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(prompt.Turns)+1)
	if prompt.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System})
	}
	for _, turn := range prompt.Turns {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: c.temperature,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	c.log.WithFields(logrus.Fields{
		"model":      c.model,
		"turns":      len(prompt.Turns),
		"max_tokens": maxTokens,
	}).Debug("requesting completion")

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices", ErrUnavailable)
	}

	c.log.WithFields(logrus.Fields{
		"finish_reason":     resp.Choices[0].FinishReason,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("completion received")

	return resp.Choices[0].Message.Content, nil
}
