package mentor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient calls the Gemini API with an API key. The key is fetched on
// every call so a rotated key is picked up without a restart.
type GeminiClient struct {
	apiKey    func() string
	modelName string
	sampling  Sampling
	opts      []option.ClientOption
}

func NewGeminiClient(apiKey func() string, modelName string, sampling Sampling, opts ...option.ClientOption) *GeminiClient {
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		sampling:  sampling,
		opts:      opts,
	}
}

// GenerateText implements TextGenerator.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	key := g.apiKey()
	if key == "" {
		return "", errors.New("gemini api key is not set")
	}

	opts := append([]option.ClientOption{option.WithAPIKey(key)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SetTemperature(g.sampling.Temperature)
	model.SetTopP(g.sampling.TopP)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp), nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
