package llm

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/satriahrh/expert-chat/config"
	"github.com/satriahrh/expert-chat/domain"
)

type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient builds a chat-completions client. The HTTP transport is
// created with no proxy function, so proxy settings are never picked up
// from the ambient environment.
func NewOpenAIClient(cfg *config.Config) (domain.Llm, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.HTTPClient = &http.Client{
		Transport: &http.Transport{Proxy: nil},
	}
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: config.Temperature,
	}, nil
}

func (o *OpenAIClient) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages:    make([]openai.ChatCompletionMessage, len(messages)),
	}
	for i, msg := range messages {
		request.Messages[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
