package mentor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// VertexConfig selects the backend for VertexClient. With Project set the
// client talks to Vertex AI using application default credentials;
// otherwise it uses the Gemini API with the key returned by APIKey.
type VertexConfig struct {
	Project   string
	Location  string
	APIKey    func() string
	ModelName string
	Sampling  Sampling
	// BaseURL overrides the service endpoint, mainly for proxies.
	BaseURL string
}

// VertexClient uses the google.golang.org/genai SDK.
type VertexClient struct {
	cfg VertexConfig
}

func NewVertexClient(cfg VertexConfig) *VertexClient {
	return &VertexClient{cfg: cfg}
}

func (v *VertexClient) clientConfig() *genai.ClientConfig {
	opts := genai.HTTPOptions{BaseURL: v.cfg.BaseURL}
	if v.cfg.Project != "" {
		return &genai.ClientConfig{
			Project:     v.cfg.Project,
			Location:    v.cfg.Location,
			Backend:     genai.BackendVertexAI,
			HTTPOptions: opts,
		}
	}
	var key string
	if v.cfg.APIKey != nil {
		key = v.cfg.APIKey()
	}
	return &genai.ClientConfig{
		APIKey:      key,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: opts,
	}
}

// GenerateText implements TextGenerator.
func (v *VertexClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, v.clientConfig())
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}

	temp := v.cfg.Sampling.Temperature
	topP := v.cfg.Sampling.TopP
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
		TopP:        &topP,
	}

	res, err := client.Models.GenerateContent(ctx, v.cfg.ModelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("genai generate content: %w", err)
	}
	return res.Text(), nil
}
