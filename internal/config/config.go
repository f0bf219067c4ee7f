// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"sitegen-cost/core/estimator"
	"sitegen-cost/core/packs"
	"sitegen-cost/core/types"
	apperrors "sitegen-cost/internal/errors"
	"sitegen-cost/internal/logging"
)

// EnvConfigPath names the config file when no --config flag is given
const EnvConfigPath = "SITECOST_CONFIG"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Pricing contains every number the estimator prices with
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Catalog points at optional catalog overrides
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`

	// Packs lists the token top-up packs on offer
	Packs []PackConfig `json:"packs" yaml:"packs"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	BaseCost int `json:"base_cost" yaml:"base_cost"`

	PromptTiers    []estimator.PromptTier `json:"prompt_tiers" yaml:"prompt_tiers"`
	LongPromptCost int                    `json:"long_prompt_cost" yaml:"long_prompt_cost"`

	RefinementMin int `json:"refinement_min" yaml:"refinement_min"`
	RefinementMax int `json:"refinement_max" yaml:"refinement_max"`
	GenerationMin int `json:"generation_min" yaml:"generation_min"`
	GenerationMax int `json:"generation_max" yaml:"generation_max"`

	CustomColorsCost int `json:"custom_colors_cost" yaml:"custom_colors_cost"`
	DarkModeCost     int `json:"dark_mode_cost" yaml:"dark_mode_cost"`

	FreeSections int `json:"free_sections" yaml:"free_sections"`

	// SectionRate is a decimal string such as "0.75"
	SectionRate string `json:"section_rate" yaml:"section_rate"`

	StickyElementCost int `json:"sticky_element_cost" yaml:"sticky_element_cost"`
	StickyElementCap  int `json:"sticky_element_cap" yaml:"sticky_element_cap"`

	RefinementTiers []estimator.TierBound `json:"refinement_tiers" yaml:"refinement_tiers"`
	RefinementTop   types.Tier            `json:"refinement_top" yaml:"refinement_top"`
	GenerationTiers []estimator.TierBound `json:"generation_tiers" yaml:"generation_tiers"`
	GenerationTop   types.Tier            `json:"generation_top" yaml:"generation_top"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// File is an HCL file whose categories replace the shipped ones
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// ShowBreakdown prints the itemized breakdown
	ShowBreakdown bool `json:"show_breakdown" yaml:"show_breakdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds" yaml:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// PackConfig is a top-up pack as written in the config file
type PackConfig struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Tokens   int    `json:"tokens" yaml:"tokens"`
	Price    string `json:"price" yaml:"price"`
	Currency string `json:"currency" yaml:"currency"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingFromPolicy(estimator.DefaultPolicy()),
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Logging: logging.DefaultConfig(),
		Packs:   packConfigs(packs.Default()),
	}
}

// PricingFromPolicy converts a policy into its config form
func PricingFromPolicy(p estimator.Policy) PricingConfig {
	return PricingConfig{
		BaseCost:          p.BaseCost,
		PromptTiers:       append([]estimator.PromptTier(nil), p.PromptTiers...),
		LongPromptCost:    p.LongPromptCost,
		RefinementMin:     p.RefinementMin,
		RefinementMax:     p.RefinementMax,
		GenerationMin:     p.GenerationMin,
		GenerationMax:     p.GenerationMax,
		CustomColorsCost:  p.CustomColorsCost,
		DarkModeCost:      p.DarkModeCost,
		FreeSections:      p.FreeSections,
		SectionRate:       p.SectionRate.String(),
		StickyElementCost: p.StickyElementCost,
		StickyElementCap:  p.StickyElementCap,
		RefinementTiers:   append([]estimator.TierBound(nil), p.RefinementTiers...),
		RefinementTop:     p.RefinementTop,
		GenerationTiers:   append([]estimator.TierBound(nil), p.GenerationTiers...),
		GenerationTop:     p.GenerationTop,
	}
}

// Policy converts the pricing section into an estimator policy
func (p PricingConfig) Policy() (estimator.Policy, error) {
	rate, err := decimal.NewFromString(p.SectionRate)
	if err != nil {
		return estimator.Policy{}, apperrors.Wrap(apperrors.TypeConfig, "invalid section_rate", err).
			WithContext("section_rate", p.SectionRate)
	}

	policy := estimator.Policy{
		BaseCost:          p.BaseCost,
		PromptTiers:       p.PromptTiers,
		LongPromptCost:    p.LongPromptCost,
		RefinementMin:     p.RefinementMin,
		RefinementMax:     p.RefinementMax,
		GenerationMin:     p.GenerationMin,
		GenerationMax:     p.GenerationMax,
		CustomColorsCost:  p.CustomColorsCost,
		DarkModeCost:      p.DarkModeCost,
		FreeSections:      p.FreeSections,
		SectionRate:       rate,
		StickyElementCost: p.StickyElementCost,
		StickyElementCap:  p.StickyElementCap,
		RefinementTiers:   p.RefinementTiers,
		RefinementTop:     p.RefinementTop,
		GenerationTiers:   p.GenerationTiers,
		GenerationTop:     p.GenerationTop,
	}
	if err := policy.Validate(); err != nil {
		return estimator.Policy{}, err
	}
	return policy, nil
}

// PackList converts the configured packs, falling back to the shipped
// list when none are configured.
func (c *Config) PackList() ([]packs.Pack, error) {
	if len(c.Packs) == 0 {
		return packs.Default(), nil
	}
	out := make([]packs.Pack, 0, len(c.Packs))
	for _, pc := range c.Packs {
		price, err := decimal.NewFromString(pc.Price)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.TypeConfig, "invalid pack price", err).
				WithContext("pack", pc.ID)
		}
		if pc.Tokens <= 0 {
			return nil, apperrors.Newf(apperrors.TypeConfig, "pack %q must grant tokens", pc.ID)
		}
		out = append(out, packs.Pack{
			ID:       pc.ID,
			Name:     pc.Name,
			Tokens:   pc.Tokens,
			Price:    price,
			Currency: pc.Currency,
		})
	}
	return out, nil
}

func packConfigs(list []packs.Pack) []PackConfig {
	out := make([]PackConfig, len(list))
	for i, p := range list {
		out[i] = PackConfig{
			ID:       p.ID,
			Name:     p.Name,
			Tokens:   p.Tokens,
			Price:    p.Price.StringFixed(2),
			Currency: p.Currency,
		}
	}
	return out
}

// Validate checks that the configuration can be used
func (c *Config) Validate() error {
	if _, err := c.Pricing.Policy(); err != nil {
		return err
	}
	if _, err := c.PackList(); err != nil {
		return err
	}
	switch c.Output.DefaultFormat {
	case "cli", "json", "markdown":
	default:
		return apperrors.Newf(apperrors.TypeConfig, "unknown output format %q", c.Output.DefaultFormat)
	}
	return nil
}

// ResolvePath returns flagPath if set, otherwise the SITECOST_CONFIG
// environment variable, otherwise the per-user default location.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".sitecost", "config.yaml")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, apperrors.Wrap(apperrors.TypeConfig, "failed to read config", err).
			WithContext("file", path)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TypeConfig, "failed to decode config", err).
			WithContext("file", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Marshal encodes the configuration as YAML or JSON
func (c *Config) Marshal(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "  ")
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(isYAML(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
