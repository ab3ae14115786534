package mentor

import (
	"fmt"

	"github.com/BerylCAtieno/edupath-mentor/internal/config"
)

// NewTextGenerator returns the backend selected by cfg.Backend.
func NewTextGenerator(cfg config.LLMConfig) (TextGenerator, error) {
	sampling := Sampling{Temperature: cfg.Temperature, TopP: cfg.TopP}

	switch cfg.Backend {
	case config.BackendGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model, sampling), nil
	case config.BackendVertex:
		return NewVertexClient(VertexConfig{
			Project:   cfg.GCPProject,
			Location:  cfg.GCPLocation,
			APIKey:    cfg.APIKey,
			ModelName: cfg.Model,
			Sampling:  sampling,
		}), nil
	case config.BackendMock:
		return NewMockClient(), nil
	}
	return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
}
