package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements CompletionProvider against any OpenAI-compatible
// chat-completions endpoint. Every call carries an explicit timeout and a
// bounded retry; a slow provider can no longer hang a request indefinitely.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", &AIError{Type: ErrTypeValidation, Operation: "completion", Message: "empty transcript"}
	}

	req := openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    make([]openai.ChatCompletionMessage, len(messages)),
		Temperature: p.config.Temperature,
		TopP:        p.config.TopP,
	}
	for i, m := range messages {
		req.Messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	var reply string
	err := retryWithBackoff(ctx, p.config.MaxRetries, p.config.RetryDelay, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()

		resp, err := p.client.CreateChatCompletion(callCtx, req)
		if err != nil {
			return NewProviderError("completion", "failed to create completion", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return NewProviderError("completion", "empty completion response", nil)
		}
		reply = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	return reply, nil
}
