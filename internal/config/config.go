package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Backend string

const (
	BackendGemini Backend = "gemini"
	BackendVertex Backend = "vertex"
	BackendMock   Backend = "mock"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Tracing TracingConfig `yaml:"tracing"`
}

type ServerConfig struct {
	Port       string        `yaml:"port"`
	Mode       string        `yaml:"mode"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type LLMConfig struct {
	Backend     Backend `yaml:"backend"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
	// APIKeyEnv names the environment variable holding the API key. The key
	// itself is never stored in config; it is read at call time.
	APIKeyEnv   string `yaml:"api_key_env"`
	GCPProject  string `yaml:"gcp_project"`
	GCPLocation string `yaml:"gcp_location"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// ConfigPathEnv points at an optional YAML config file.
const ConfigPathEnv = "EDUPATH_CONFIG"

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:       "8080",
			Mode:       "dev",
			SessionTTL: 2 * time.Hour,
		},
		LLM: LLMConfig{
			Backend:     BackendGemini,
			Model:       "gemini-2.5-flash",
			Temperature: 0.7,
			TopP:        0.9,
			APIKeyEnv:   "GEMINI_API_KEY",
			GCPLocation: "us-central1",
		},
		Tracing: TracingConfig{
			SampleRatio: 1,
		},
	}
}

// Load builds the configuration from, in increasing precedence: built-in
// defaults, the YAML file named by EDUPATH_CONFIG, and EDUPATH_* environment
// variables. A .env file in the working directory is loaded into the
// environment first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return loadFromPath(os.Getenv(ConfigPathEnv))
}

func loadFromPath(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LLM.Backend {
	case BackendGemini, BackendMock:
	case BackendVertex:
		if c.LLM.GCPProject == "" {
			return fmt.Errorf("missing required config: llm.gcp_project (EDUPATH_GCP_PROJECT) for the vertex backend")
		}
	default:
		return fmt.Errorf("unknown llm.backend %q (want gemini, vertex or mock)", c.LLM.Backend)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("missing required config: llm.model")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature %v out of range [0, 2]", c.LLM.Temperature)
	}
	if c.LLM.TopP <= 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("llm.top_p %v out of range (0, 1]", c.LLM.TopP)
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("server.session_ttl must be positive")
	}
	return nil
}

// APIKey reads the API key from the environment variable named by
// APIKeyEnv.
func (c LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}
