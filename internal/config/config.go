package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger        string              `yaml:"jaeger" env:"JAEGER"`
	Log           LogConfig           `yaml:"log"`
	HTTP          HTTPConfig          `yaml:"http"`
	GRPC          GRPCConfig          `yaml:"grpc"`
	LLM           LLMConfig           `yaml:"llm"`
	Aviationstack AviationstackConfig `yaml:"aviationstack"`
	OpenMeteo     OpenMeteoConfig     `yaml:"open_meteo"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"3m"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// GRPCConfig configures the health probe server. Port 0 disables it.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"GRPC_PORT" env-default:"0"`
}

type LLMConfig struct {
	Provider     string        `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	Model        string        `yaml:"model" env:"LLM_MODEL"`
	Temperature  float32       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
	OpenAIKey    string        `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
	OpenAIURL    string        `yaml:"openai_base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com"`
	GeminiAPIKey string        `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Timeout      time.Duration `yaml:"timeout" env:"LLM_TIMEOUT" env-default:"60s"`
}

type AviationstackConfig struct {
	BaseURL string        `yaml:"base_url" env:"AVIATIONSTACK_BASE_URL" env-default:"http://api.aviationstack.com"`
	Key     string        `yaml:"key" env:"AVIATIONSTACK_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"AVIATIONSTACK_TIMEOUT" env-default:"10s"`
}

type OpenMeteoConfig struct {
	GeocodingURL string        `yaml:"geocoding_base_url" env:"OPEN_METEO_GEOCODING_URL" env-default:"https://geocoding-api.open-meteo.com"`
	ForecastURL  string        `yaml:"forecast_base_url" env:"OPEN_METEO_FORECAST_URL" env-default:"https://api.open-meteo.com"`
	Timeout      time.Duration `yaml:"timeout" env:"OPEN_METEO_TIMEOUT" env-default:"10s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIKey returns the key of the selected provider.
func (c LLMConfig) APIKey() string {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case ProviderGemini:
		return strings.TrimSpace(c.GeminiAPIKey)
	default:
		return strings.TrimSpace(c.OpenAIKey)
	}
}

// Validate reports missing secrets. Both binaries refuse to start without them.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(strings.TrimSpace(c.LLM.Provider)) {
	case ProviderOpenAI, "":
		if c.LLM.APIKey() == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required for llm provider openai"))
		}
	case ProviderGemini:
		if c.LLM.APIKey() == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for llm provider gemini"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported llm provider %q", c.LLM.Provider))
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm temperature %v is outside [0, 2]", c.LLM.Temperature))
	}

	if strings.TrimSpace(c.Aviationstack.Key) == "" {
		errs = append(errs, errors.New("AVIATIONSTACK_KEY is required"))
	}

	return errors.Join(errs...)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// LoadByPath reads the yaml file and applies env overrides. A missing file is
// not an error: defaults and env alone are a valid configuration.
func LoadByPath(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read the config from env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
