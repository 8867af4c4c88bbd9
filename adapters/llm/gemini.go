package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/satriahrh/expert-chat/config"
	"github.com/satriahrh/expert-chat/domain"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a Gemini-backed client. Like the OpenAI adapter,
// its transport carries no proxy function.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (domain.Llm, error) {
	client, err := genai.NewClient(
		ctx,
		&genai.ClientConfig{
			APIKey:      cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
			HTTPClient: &http.Client{
				Transport: &http.Transport{Proxy: nil},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	generateConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(config.Temperature)),
	}

	// Gemini carries the system instruction in config, not in contents.
	var contents []*genai.Content
	for _, msg := range messages {
		if msg.Role == domain.SystemRole {
			generateConfig.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: msg.Content}},
			}
			continue
		}
		role := genai.RoleUser
		if msg.Role == domain.AssistantRole {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, generateConfig)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
