package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "SENTIMENT_CONFIG"
	secretsPathEnv   = "SENTIMENT_SECRETS_FILE"
	listenAddrEnv    = "SENTIMENT_ADDR"
	providerEnv      = "SENTIMENT_LLM_PROVIDER"
	modelEnv         = "SENTIMENT_LLM_MODEL"
	endpointEnv      = "SENTIMENT_LLM_ENDPOINT"
	logLevelEnv      = "SENTIMENT_LOG_LEVEL"
	logFormatEnv     = "SENTIMENT_LOG_FORMAT"
	classifyEmptyEnv = "SENTIMENT_CLASSIFY_EMPTY"

	defaultSecretsFile = "secrets.env"
)

// Supported model providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DefaultUserAgent resembles a desktop browser so basic bot filters let the fetch through.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var apiKeyEnvs = map[string]string{
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-1.5-flash-latest",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// Config holds high-level settings required across the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Fetcher  FetcherConfig  `yaml:"fetcher"`
	LLM      LLMConfig      `yaml:"llm"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig describes the HTTP listener serving the UI.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

// FetcherConfig controls how article pages are downloaded.
type FetcherConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// LLMConfig defines how to contact the language model provider.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"apiKey"`
	// Endpoint overrides the provider base URL; empty means the SDK default.
	Endpoint string `yaml:"endpoint"`
}

// AnalysisConfig tunes the analysis flow.
type AnalysisConfig struct {
	// ClassifyEmptyContent sends pages without paragraph text to the model anyway.
	ClassifyEmptyContent bool `yaml:"classifyEmptyContent"`
}

// LoggingConfig selects slog level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// APIKeyEnv returns the environment variable holding the provider credential.
func APIKeyEnv(provider string) string {
	if env, ok := apiKeyEnvs[provider]; ok {
		return env
	}
	return strings.ToUpper(provider) + "_API_KEY"
}

// DefaultModel returns the model identifier used when none is configured.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// Load reads YAML configuration (if present), the secrets file and environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	loadSecrets()
	cfg.applyEnvOverrides()

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel(cfg.LLM.Provider)
	}

	return cfg
}

// Validate reports settings that must stop the process before serving.
func (c Config) Validate() error {
	if _, ok := apiKeyEnvs[c.LLM.Provider]; !ok {
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("%s not found. Please check your secrets file with your key", APIKeyEnv(c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		return errors.New("llm model is not configured")
	}
	if c.Fetcher.Timeout <= 0 {
		return errors.New("fetcher timeout must be positive")
	}
	return nil
}

// loadSecrets populates the environment from the dotenv secrets file without
// overriding variables that are already set.
func loadSecrets() {
	path := os.Getenv(secretsPathEnv)
	explicit := path != ""
	if !explicit {
		path = defaultSecretsFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: cannot load secrets from %s: %v", path, err)
		}
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(providerEnv); v != "" {
		if !strings.EqualFold(v, c.LLM.Provider) {
			c.LLM.Model = ""
			c.LLM.Endpoint = ""
		}
		c.LLM.Provider = strings.ToLower(v)
	}

	if v := os.Getenv(modelEnv); v != "" {
		c.LLM.Model = v
	}

	if v := os.Getenv(endpointEnv); v != "" {
		c.LLM.Endpoint = v
	}

	if v := os.Getenv(APIKeyEnv(c.LLM.Provider)); v != "" {
		c.LLM.APIKey = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}

	if v := os.Getenv(classifyEmptyEnv); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Analysis.ClassifyEmptyContent = b
		} else {
			log.Printf("config: ignoring %s=%q: %v", classifyEmptyEnv, v, err)
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.ReadTimeout > 0 {
		base.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout > 0 {
		base.Server.WriteTimeout = override.Server.WriteTimeout
	}
	if override.Server.ShutdownTimeout > 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}
	if len(override.Server.AllowedOrigins) > 0 {
		base.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if override.Fetcher.Timeout > 0 {
		base.Fetcher.Timeout = override.Fetcher.Timeout
	}
	if override.Fetcher.UserAgent != "" {
		base.Fetcher.UserAgent = override.Fetcher.UserAgent
	}

	if override.LLM.Provider != "" && override.LLM.Provider != base.LLM.Provider {
		base.LLM.Provider = strings.ToLower(override.LLM.Provider)
		base.LLM.Model = ""
	}
	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}
	if override.LLM.APIKey != "" {
		base.LLM.APIKey = override.LLM.APIKey
	}
	if override.LLM.Endpoint != "" {
		base.LLM.Endpoint = override.LLM.Endpoint
	}

	if override.Analysis.ClassifyEmptyContent {
		base.Analysis.ClassifyEmptyContent = true
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8501",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    5 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
		Fetcher: FetcherConfig{
			Timeout:   10 * time.Second,
			UserAgent: DefaultUserAgent,
		},
		LLM: LLMConfig{
			Provider: ProviderGemini,
			Model:    DefaultModel(ProviderGemini),
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}
