package analyzer

import (
	"fmt"

	"contractiq/internal/config"
	"contractiq/internal/port"
)

// ProviderFactory is a function that creates a ContractAnalyzer from a provider config.
type ProviderFactory func(cfg *config.AnalyzerProviderConfig) (port.ContractAnalyzer, error)

// registry of analyzer provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an analyzer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewAnalyzer creates a ContractAnalyzer from a provider config using the registered factory.
func NewAnalyzer(cfg *config.AnalyzerProviderConfig) (port.ContractAnalyzer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewFromConfig builds the analyzer chain: primary alone, or primary with a
// secondary fallback when one is configured.
func NewFromConfig(cfg *config.AnalyzerConfig) (port.ContractAnalyzer, error) {
	primary, err := NewAnalyzer(&cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("creating primary analyzer: %w", err)
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := NewAnalyzer(secondaryCfg)
	if err != nil {
		return nil, fmt.Errorf("creating secondary analyzer: %w", err)
	}

	return NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
