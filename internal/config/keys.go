package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type keyType int

const (
	kString keyType = iota
	kBool
	kFloat
	kDuration
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "server.port", typ: kString, env: "EDUPATH_PORT",
		apply:   func(cfg *Config, v any) { cfg.Server.Port = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.Port },
	},
	{
		key: "server.mode", typ: kString, env: "EDUPATH_MODE",
		apply:   func(cfg *Config, v any) { cfg.Server.Mode = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.Mode },
	},
	{
		key: "server.session_ttl", typ: kDuration, env: "EDUPATH_SESSION_TTL",
		apply:   func(cfg *Config, v any) { cfg.Server.SessionTTL = v.(time.Duration) },
		extract: func(cfg Config) any { return cfg.Server.SessionTTL },
	},
	{
		key: "llm.backend", typ: kString, env: "EDUPATH_LLM_BACKEND",
		apply:   func(cfg *Config, v any) { cfg.LLM.Backend = Backend(v.(string)) },
		extract: func(cfg Config) any { return cfg.LLM.Backend },
	},
	{
		key: "llm.model", typ: kString, env: "EDUPATH_MODEL",
		apply:   func(cfg *Config, v any) { cfg.LLM.Model = v.(string) },
		extract: func(cfg Config) any { return cfg.LLM.Model },
	},
	{
		key: "llm.temperature", typ: kFloat, env: "EDUPATH_TEMPERATURE",
		apply:   func(cfg *Config, v any) { cfg.LLM.Temperature = float32(v.(float64)) },
		extract: func(cfg Config) any { return cfg.LLM.Temperature },
	},
	{
		key: "llm.top_p", typ: kFloat, env: "EDUPATH_TOP_P",
		apply:   func(cfg *Config, v any) { cfg.LLM.TopP = float32(v.(float64)) },
		extract: func(cfg Config) any { return cfg.LLM.TopP },
	},
	{
		key: "llm.api_key_env", typ: kString, env: "EDUPATH_API_KEY_ENV",
		apply:   func(cfg *Config, v any) { cfg.LLM.APIKeyEnv = v.(string) },
		extract: func(cfg Config) any { return cfg.LLM.APIKeyEnv },
	},
	{
		key: "llm.gcp_project", typ: kString, env: "EDUPATH_GCP_PROJECT",
		apply:   func(cfg *Config, v any) { cfg.LLM.GCPProject = v.(string) },
		extract: func(cfg Config) any { return cfg.LLM.GCPProject },
	},
	{
		key: "llm.gcp_location", typ: kString, env: "EDUPATH_GCP_LOCATION",
		apply:   func(cfg *Config, v any) { cfg.LLM.GCPLocation = v.(string) },
		extract: func(cfg Config) any { return cfg.LLM.GCPLocation },
	},
	{
		key: "tracing.enabled", typ: kBool, env: "EDUPATH_TRACING_ENABLED",
		apply:   func(cfg *Config, v any) { cfg.Tracing.Enabled = v.(bool) },
		extract: func(cfg Config) any { return cfg.Tracing.Enabled },
	},
	{
		key: "tracing.endpoint", typ: kString, env: "EDUPATH_TRACING_ENDPOINT",
		apply:   func(cfg *Config, v any) { cfg.Tracing.Endpoint = v.(string) },
		extract: func(cfg Config) any { return cfg.Tracing.Endpoint },
	},
	{
		key: "tracing.insecure", typ: kBool, env: "EDUPATH_TRACING_INSECURE",
		apply:   func(cfg *Config, v any) { cfg.Tracing.Insecure = v.(bool) },
		extract: func(cfg Config) any { return cfg.Tracing.Insecure },
	},
	{
		key: "tracing.sample_ratio", typ: kFloat, env: "EDUPATH_TRACING_SAMPLE_RATIO",
		apply:   func(cfg *Config, v any) { cfg.Tracing.SampleRatio = v.(float64) },
		extract: func(cfg Config) any { return cfg.Tracing.SampleRatio },
	},
}

func applyEnvOverrides(cfg *Config) error {
	for _, s := range specs {
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("parsing %s=%q: %w", s.env, raw, err)
			}
			s.apply(cfg, b)
		case kFloat:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("parsing %s=%q: %w", s.env, raw, err)
			}
			s.apply(cfg, f)
		case kDuration:
			d, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("parsing %s=%q: %w", s.env, raw, err)
			}
			s.apply(cfg, d)
		}
	}
	return nil
}

// KeyInfo describes a config key for display purposes.
type KeyInfo struct {
	Key    string
	EnvVar string
	Value  string
}

// ShowAll returns every config key with its effective value.
func ShowAll(cfg Config) []KeyInfo {
	result := make([]KeyInfo, 0, len(specs))
	for _, s := range specs {
		result = append(result, KeyInfo{
			Key:    s.key,
			EnvVar: s.env,
			Value:  fmt.Sprintf("%v", s.extract(cfg)),
		})
	}
	return result
}
