package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds runtime configuration for classification, layout and animation.
// Fields may be loaded from a JSON file and overridden by command-line flags.
// The API key is never read from or written to the file; see LoadSecrets.
type Config struct {
	Debug bool `json:"debug"`

	// Classification provider: "watson", "vision", "ollama" or "gemini".
	Provider       string  `json:"provider"`
	ServiceURL     string  `json:"service_url"`
	ServiceVersion string  `json:"service_version"`
	Model          string  `json:"model"` // ollama / gemini model name
	Threshold      float64 `json:"threshold"`
	LearningOptOut bool    `json:"learning_opt_out"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	APIKey         string  `json:"-"`

	// Canvas and text placement
	CanvasW       int `json:"canvas_w"`
	CanvasH       int `json:"canvas_h"`
	ImageX        int `json:"image_x"`
	ImageY        int `json:"image_y"`
	LabelRegionW  int `json:"label_region_w"`
	LabelRegionH  int `json:"label_region_h"`
	StrategyX     int `json:"strategy_x"`
	StrategyY     int `json:"strategy_y"`
	RevealDelayMs int `json:"reveal_delay_ms"`

	// Seed for label placement; 0 picks a fresh seed each run.
	Seed uint64 `json:"seed"`
}

const (
	ProviderWatson = "watson"
	ProviderVision = "vision"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Default endpoints.
const (
	DefaultServiceURL = "https://gateway.watsonplatform.net/visual-recognition/api"
	DefaultOllamaURL  = "http://localhost:11434"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		Provider:       ProviderWatson,
		ServiceURL:     DefaultServiceURL,
		ServiceVersion: "2016-05-20",
		Model:          "",
		Threshold:      0.1,
		LearningOptOut: true,
		TimeoutSeconds: 30,
		CanvasW:        800,
		CanvasH:        800,
		ImageX:         20,
		ImageY:         20,
		LabelRegionW:   400,
		LabelRegionH:   400,
		StrategyX:      5,
		StrategyY:      430,
		RevealDelayMs:  100,
		Seed:           0,
	}
}

// Validate clamps/normalizes values to safe ranges. An unknown provider is
// left as is and reported, since there is no safe provider to fall back to.
func (c *Config) Validate() error {
	var err error
	switch c.Provider {
	case ProviderWatson, ProviderVision, ProviderOllama, ProviderGemini:
	case "":
		c.Provider = ProviderWatson
	default:
		err = fmt.Errorf("unknown provider %q: want %s, %s, %s or %s",
			c.Provider, ProviderWatson, ProviderVision, ProviderOllama, ProviderGemini)
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "2016-05-20"
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		c.Threshold = 0.1
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.CanvasW <= 0 {
		c.CanvasW = 800
	}
	if c.CanvasH <= 0 {
		c.CanvasH = 800
	}
	if c.ImageX < 0 || c.ImageX >= c.CanvasW {
		c.ImageX = 0
	}
	if c.ImageY < 0 || c.ImageY >= c.CanvasH {
		c.ImageY = 0
	}
	if c.LabelRegionW <= 0 || c.LabelRegionW > c.CanvasW {
		c.LabelRegionW = c.CanvasW / 2
	}
	if c.LabelRegionH <= 0 || c.LabelRegionH > c.CanvasH {
		c.LabelRegionH = c.CanvasH / 2
	}
	if c.StrategyX < 0 || c.StrategyX >= c.CanvasW {
		c.StrategyX = 5
	}
	if c.StrategyY < 0 || c.StrategyY >= c.CanvasH {
		c.StrategyY = c.CanvasH / 2
	}
	if c.RevealDelayMs <= 0 {
		c.RevealDelayMs = 100
	}
	return err
}

// Timeout returns the classification call deadline.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Endpoint returns the base URL for the selected provider. The ollama provider
// falls back to the local daemon while the URL still points at the default service.
func (c *Config) Endpoint() string {
	if c.Provider == ProviderOllama && (c.ServiceURL == "" || c.ServiceURL == DefaultServiceURL) {
		return DefaultOllamaURL
	}
	if c.ServiceURL == "" {
		return DefaultServiceURL
	}
	return c.ServiceURL
}

// RevealDelay returns the interval between two reveal ticks.
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMs) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
