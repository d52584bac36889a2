package gateway

import "github.com/go-playground/validator/v10"

// Config is the typed destination the (external) YAML/CLI configuration
// layer populates before constructing a Gateway. Parsing the YAML itself
// stays outside the core; only the validated struct crosses the boundary.
type Config struct {
	DisableSending   bool
	DisableDiscovery bool
	EnableEavesdrop  bool
	EnforceKnownList bool
	MaxZones         int `validate:"gte=1,lte=16"`
	ReduceProcessing int `validate:"gte=0,lte=3"`
	UseAliases       bool
	UseNativeOT      bool
}

// DefaultConfig returns the conservative default a fresh Gateway starts
// from: sending and discovery both enabled, eavesdropping on (the core's
// only commissioning mechanism, per its non-goals), known-list enforcement
// off, and the full sixteen-zone ceiling.
func DefaultConfig() Config {
	return Config{
		MaxZones:         16,
		EnableEavesdrop:  true,
		ReduceProcessing: 0,
	}
}

var validate = validator.New()

// Validate checks c's struct tags with go-playground/validator, the
// Go-native analogue of the source implementation's voluptuous schema.
func (c Config) Validate() error {
	return validate.Struct(c)
}
